package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"listings-crawler/models"
)

// csvHeader fixes the output column order.
var csvHeader = []string{
	"listing_url", "listing_title", "license_code", "host_url",
	"host_name", "host_rating", "host_years", "host_reviews_count",
	"scraped_at",
}

// CSVWriter handles writing listing records to a CSV file
type CSVWriter struct {
	filePath string
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string) *CSVWriter {
	return &CSVWriter{filePath: filePath}
}

// WriteRecords writes a slice of records to the CSV file, header first.
// Records with empty fields are written as-is, never dropped.
func (w *CSVWriter) WriteRecords(records []*models.ListingRecord) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ListingURL,
			r.Title,
			r.LicenseCode,
			r.HostURL,
			r.HostName,
			r.HostRating,
			r.HostYears,
			r.HostReviews,
			r.ScrapedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			log.Error("Failed to write CSV row", "url", r.ListingURL, "err", err)
		}
	}

	log.Info("Records written", "path", w.filePath, "rows", len(records))
	return nil
}
