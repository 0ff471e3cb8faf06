package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8, cfg.MaxConcurrentPages)
	assert.Equal(t, 200, cfg.MaxListingsPerSearch)
	assert.Equal(t, "search_urls.txt", cfg.SearchURLFile)
	assert.Equal(t, 60*time.Second, cfg.NavTimeout)
	assert.True(t, cfg.Headless)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_PAGES", "4")
	t.Setenv("MAX_LISTINGS_PER_SEARCH", "50")
	t.Setenv("HEADLESS", "false")

	cfg := Load()

	assert.Equal(t, 4, cfg.MaxConcurrentPages)
	assert.Equal(t, 50, cfg.MaxListingsPerSearch)
	assert.False(t, cfg.Headless)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_PAGES", "lots")
	t.Setenv("HEADLESS", "oui")

	cfg := Load()

	assert.Equal(t, 8, cfg.MaxConcurrentPages)
	assert.True(t, cfg.Headless)
}
