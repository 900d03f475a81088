package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/config"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load scraped phone records from a JSON file into the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		path := "samsung_phones.json"
		if len(args) == 1 {
			path = args[0]
		}

		cfg := config.Load()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		st, err := store.Open(ctx, cfg.DSN, log)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}

		n, err := st.LoadJSON(ctx, path)
		if err != nil {
			return err
		}
		log.Info("catalog loaded", zap.String("path", path), zap.Int("phones", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
