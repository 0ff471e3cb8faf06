package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application-level configuration
type Config struct {
	// Input / output
	SearchURLFile string
	CSVFilePath   string

	// Database (optional; empty disables the PostgreSQL sink)
	DatabaseURL string

	// Crawl
	MaxConcurrentPages   int // cap on simultaneous in-flight listing sessions
	MaxListingsPerSearch int // discovery cap per search URL
	NavTimeout           time.Duration
	ScrollSettle         time.Duration // pause after each discovery scroll
	RateLimitDelay       int           // milliseconds between search sessions

	// Browser
	Headless bool
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		SearchURLFile:        getEnv("SEARCH_URL_FILE", "search_urls.txt"),
		CSVFilePath:          getEnv("CSV_FILE_PATH", "output/results.csv"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		MaxConcurrentPages:   getEnvInt("MAX_CONCURRENT_PAGES", 8),
		MaxListingsPerSearch: getEnvInt("MAX_LISTINGS_PER_SEARCH", 200),
		NavTimeout:           time.Duration(getEnvInt("NAV_TIMEOUT_SEC", 60)) * time.Second,
		ScrollSettle:         time.Duration(getEnvInt("SCROLL_SETTLE_MS", 1000)) * time.Millisecond,
		RateLimitDelay:       getEnvInt("RATE_LIMIT_DELAY_MS", 2000),
		Headless:             getEnvBool("HEADLESS", true),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
