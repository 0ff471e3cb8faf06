package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq"

	"listings-crawler/models"
)

// PostgresWriter handles storing listing records in PostgreSQL
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	log.Info("Connected to PostgreSQL")
	return &PostgresWriter{db: db}, nil
}

// CreateTable creates the listings table if it doesn't exist
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS listings (
		id            SERIAL PRIMARY KEY,
		listing_url   TEXT UNIQUE NOT NULL,
		listing_title TEXT,
		license_code  VARCHAR(32),
		host_url      TEXT,
		host_name     TEXT,
		host_rating   VARCHAR(8),
		host_years    VARCHAR(8),
		host_reviews  VARCHAR(16),
		scraped_at    TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_listings_license ON listings (license_code);
	CREATE INDEX IF NOT EXISTS idx_listings_host    ON listings (host_url);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// WriteRecords inserts records in a single transaction, skipping duplicates
func (w *PostgresWriter) WriteRecords(records []*models.ListingRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO listings (listing_url, listing_title, license_code, host_url,
			host_name, host_rating, host_years, host_reviews, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (listing_url) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range records {
		_, err = stmt.Exec(
			r.ListingURL,
			r.Title,
			r.LicenseCode,
			r.HostURL,
			r.HostName,
			r.HostRating,
			r.HostYears,
			r.HostReviews,
			r.ScrapedAt,
		)
		if err != nil {
			log.Warn("Skipping insert", "url", r.ListingURL, "err", err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Records stored in PostgreSQL", "inserted", inserted, "total", len(records))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
