package main

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"listings-crawler/browser"
	"listings-crawler/config"
	"listings-crawler/scraper/airbnb"
	"listings-crawler/storage"
)

func main() {
	cfg := config.Load()

	log.Info("Listings crawler starting")
	log.Info("Configuration",
		"max_concurrent_pages", cfg.MaxConcurrentPages,
		"max_listings_per_search", cfg.MaxListingsPerSearch,
		"search_url_file", cfg.SearchURLFile,
		"csv_path", cfg.CSVFilePath)

	// ================== Input ====================
	searchURLs, err := storage.ReadSearchURLs(cfg.SearchURLFile)
	if err != nil {
		log.Error("Cannot read search URL file", "err", err)
		os.Exit(1)
	}
	if len(searchURLs) == 0 {
		log.Warn("No search URLs found — nothing to crawl", "file", cfg.SearchURLFile)
		return
	}

	// ================== Browser ====================
	factory := browser.NewChromeFactory(cfg.Headless)
	defer factory.Close()

	scraper := airbnb.NewScraper(cfg, factory)
	ctx := context.Background()

	// ============ Stage 1: discovery ==============
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = " discovering listings..."
	spin.Start()
	listingURLs := scraper.DiscoverAll(ctx, searchURLs)
	spin.Stop()

	log.Info("Discovery complete", "listings", len(listingURLs))

	// ============ Stage 2: extraction ==============
	spin.Suffix = " extracting listing details..."
	spin.Start()
	records := scraper.ExtractAll(ctx, listingURLs)
	spin.Stop()

	log.Info("Extraction complete", "records", len(records))

	// ================== Output ====================
	sinks := []storage.RecordWriter{storage.NewCSVWriter(cfg.CSVFilePath)}

	if cfg.DatabaseURL != "" {
		pgWriter, err := storage.NewPostgresWriter(cfg.DatabaseURL)
		if err != nil {
			log.Error("Cannot connect to PostgreSQL, skipping DB sink", "err", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.CreateTable(); err != nil {
				log.Error("Failed to create DB table, skipping DB sink", "err", err)
			} else {
				sinks = append(sinks, pgWriter)
			}
		}
	}

	for _, sink := range sinks {
		if err := sink.WriteRecords(records); err != nil {
			log.Error("Record sink failed", "err", err)
		}
	}

	log.Info("Done", "rows", len(records), "output", cfg.CSVFilePath)
}
