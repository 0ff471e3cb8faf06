package airbnb

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"listings-crawler/browser"
	"listings-crawler/config"
	"listings-crawler/models"
	"listings-crawler/utils"
)

// Scraper drives the two-stage crawl pipeline: sequential discovery over
// the search URLs, then bounded-concurrency extraction over the
// deduplicated listing URLs. Data flows strictly downstream.
type Scraper struct {
	cfg         *config.Config
	factory     browser.Factory
	discovery   *DiscoveryCrawler
	detail      *DetailExtractor
	rateLimiter *utils.RateLimiter
}

// NewScraper creates a new Scraper
func NewScraper(cfg *config.Config, factory browser.Factory) *Scraper {
	return &Scraper{
		cfg:         cfg,
		factory:     factory,
		discovery:   NewDiscoveryCrawler(cfg.MaxListingsPerSearch, cfg.ScrollSettle),
		detail:      NewDetailExtractor(cfg.NavTimeout),
		rateLimiter: utils.NewRateLimiter(cfg.RateLimitDelay),
	}
}

// DiscoverAll processes the search URLs one at a time, each in its own
// page session, and returns the union of discovered listing URLs with
// duplicates collapsed in first-seen order. A search page that fails
// contributes whatever it had discovered before the failure.
func (s *Scraper) DiscoverAll(ctx context.Context, searchURLs []string) []string {
	tracker := utils.NewURLTracker()

	for _, searchURL := range searchURLs {
		s.rateLimiter.Wait(ctx)

		page, err := s.factory.NewPage(ctx)
		if err != nil {
			log.Error("Cannot open search session", "url", searchURL, "err", err)
			continue
		}
		found := s.discovery.Collect(ctx, page, searchURL)
		page.Close()

		tracker.AddAll(found)
		log.Info("Search page processed", "url", searchURL, "found", len(found), "total", tracker.Count())
	}

	return tracker.URLs()
}

// ExtractAll runs detail extraction over all listing URLs with at most
// MaxConcurrentPages sessions in flight. Every listing URL yields exactly
// one record, whatever happens to its session.
func (s *Scraper) ExtractAll(ctx context.Context, listingURLs []string) []*models.ListingRecord {
	var (
		mu      sync.Mutex
		records []*models.ListingRecord
	)

	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrentPages)

	for _, listingURL := range listingURLs {
		listingURL := listingURL
		g.Go(func() error {
			rec := s.extractOne(ctx, listingURL)
			mu.Lock()
			records = append(records, rec)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return records
}

// extractOne owns one page session for the lifetime of one listing. A
// session that cannot even be opened still yields the minimal record.
func (s *Scraper) extractOne(ctx context.Context, listingURL string) *models.ListingRecord {
	page, err := s.factory.NewPage(ctx)
	if err != nil {
		log.Warn("Cannot open listing session", "url", listingURL, "err", err)
		return models.NewListingRecord(listingURL)
	}
	defer page.Close()

	return s.detail.Extract(ctx, page, listingURL)
}
