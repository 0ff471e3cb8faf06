package airbnb

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"listings-crawler/browser"
	"listings-crawler/utils"
)

// ListingPathMarker identifies anchors pointing at a listing detail page.
const ListingPathMarker = "/rooms/"

// scrollIncrement is how far each harvest cycle scrolls the viewport.
const scrollIncrement = 1500

// DiscoveryCrawler harvests listing URLs from one infinite-scroll search
// results page. The loop terminates either by reaching the configured cap
// or by scroll-height convergence (the page stopped producing content);
// there is deliberately no iteration-count ceiling, so lazy-loading bursts
// are followed as far as they go.
type DiscoveryCrawler struct {
	maxListings int
	settle      time.Duration
}

// NewDiscoveryCrawler creates a crawler capped at maxListings per search
// page, pausing settle after each scroll.
func NewDiscoveryCrawler(maxListings int, settle time.Duration) *DiscoveryCrawler {
	return &DiscoveryCrawler{maxListings: maxListings, settle: settle}
}

// Collect runs the scroll-and-harvest loop against one search URL and
// returns up to the cap of distinct normalized listing URLs. Failures
// degrade to whatever was discovered before they hit; Collect never
// propagates an error upward.
func (c *DiscoveryCrawler) Collect(ctx context.Context, page browser.Page, searchURL string) []string {
	if err := page.Navigate(ctx, searchURL); err != nil {
		log.Warn("Search page navigation failed", "url", searchURL, "err", err)
		return nil
	}

	tracker := utils.NewURLTracker()
	lastHeight := int64(-1)

	for {
		hrefs, err := page.AnchorHrefs(ctx, ListingPathMarker)
		if err != nil {
			log.Debug("Anchor harvest failed", "url", searchURL, "err", err)
		}
		for _, href := range hrefs {
			if !strings.Contains(href, ListingPathMarker) {
				continue
			}
			tracker.Add(utils.StripQuery(href))
		}

		if tracker.Count() >= c.maxListings {
			break
		}

		if err := page.ScrollBy(ctx, scrollIncrement); err != nil {
			log.Debug("Scroll failed", "url", searchURL, "err", err)
			break
		}
		time.Sleep(c.settle)

		height, err := page.ScrollHeight(ctx)
		if err != nil {
			log.Debug("Scroll height read failed", "url", searchURL, "err", err)
			break
		}
		if height == lastHeight {
			// Height converged: the page has no more content to load.
			break
		}
		lastHeight = height
	}

	urls := tracker.URLs()
	if len(urls) > c.maxListings {
		urls = urls[:c.maxListings]
	}
	return urls
}
