package scraper

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

// SaveJSON writes scraped records to a JSON file, the format LoadJSON
// ingests.
func SaveJSON(phones []store.PhoneRecord, path string) error {
	data, err := json.MarshalIndent(phones, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal phones: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveCSV writes scraped records to a CSV file with catalog column
// headers.
func SaveCSV(phones []store.PhoneRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(store.PhoneColumns()); err != nil {
		return err
	}
	for i := range phones {
		if err := w.Write(phones[i].Fields()); err != nil {
			return err
		}
	}
	return w.Error()
}
