// Package cli defines the Cobra commands for the phone advisor:
// serve, scrape, load, and ask.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "phone-advisor",
	Short: "Natural-language Q&A over a Samsung phone-spec catalog",
	Long: `Phone Advisor answers questions about Samsung phones by turning them
into SQL with a language model, running the query against a Postgres
catalog, and summarizing the rows in prose. The catalog is populated
by a GSMArena scraper.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
