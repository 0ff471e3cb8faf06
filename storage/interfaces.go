package storage

import "listings-crawler/models"

// RecordWriter is a sink for the final crawl records.
type RecordWriter interface {
	WriteRecords(records []*models.ListingRecord) error
}
