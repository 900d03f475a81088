package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/config"
	"github.com/JonMunkholm/PhoneAdvisor/internal/scraper"
)

var (
	scrapeLimit int
	scrapeJSON  string
	scrapeCSV   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape phone specs from GSMArena into JSON/CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg := config.Load()
		s := scraper.New(cfg, log)

		phones, err := s.ScrapeLimit(cmd.Context(), scrapeLimit)
		if err != nil {
			return err
		}
		log.Info("scrape complete", zap.Int("phones", len(phones)))

		if err := scraper.SaveJSON(phones, scrapeJSON); err != nil {
			return err
		}
		log.Info("saved", zap.String("path", scrapeJSON))

		if scrapeCSV != "" {
			if err := scraper.SaveCSV(phones, scrapeCSV); err != nil {
				return err
			}
			log.Info("saved", zap.String("path", scrapeCSV))
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().IntVar(&scrapeLimit, "limit", 0, "max phones to scrape (0 = all)")
	scrapeCmd.Flags().StringVar(&scrapeJSON, "out", "samsung_phones.json", "JSON output path")
	scrapeCmd.Flags().StringVar(&scrapeCSV, "csv", "samsung_phones.csv", "CSV output path (empty to skip)")
	rootCmd.AddCommand(scrapeCmd)
}
