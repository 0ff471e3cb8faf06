package models

import "time"

// ListingRecord is one output row, keyed by its normalized listing URL.
// Every field except ListingURL and ScrapedAt is best-effort and may be
// empty; a record with empty fields is still a valid record.
type ListingRecord struct {
	ListingURL  string
	Title       string
	LicenseCode string
	HostURL     string
	HostName    string
	HostRating  string // decimal string on a 0-5 scale, "." separator
	HostYears   string // non-negative integer as string
	HostReviews string // integer as string, separators stripped
	ScrapedAt   time.Time
}

// NewListingRecord returns a record holding only the URL and a fresh UTC
// timestamp — the minimal valid row a failed extraction degrades to.
func NewListingRecord(listingURL string) *ListingRecord {
	return &ListingRecord{
		ListingURL: listingURL,
		ScrapedAt:  time.Now().UTC(),
	}
}

// HostStats is the derived triple pulled out of a block of host text.
// Empty strings mean "pattern not found"; the three fields are independent.
type HostStats struct {
	Rating  string
	Reviews string
	Years   string
}
