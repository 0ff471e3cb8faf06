package airbnb

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"listings-crawler/browser"
	"listings-crawler/models"
	"listings-crawler/services"
)

// expandLabels are the known "show more" button texts that hide collapsed
// descriptions and host details behind a click.
var expandLabels = []string{
	"Lire la suite",
	"Afficher plus",
	"En savoir plus",
}

// expandSettle gives the page a moment to re-render after expansion clicks.
const expandSettle = 500 * time.Millisecond

// DetailExtractor turns one listing page into one record. It never fails:
// every sub-step swallows its own errors and contributes empty fields, so
// a bad selector degrades one field, never the whole listing.
type DetailExtractor struct {
	navTimeout time.Duration
}

// NewDetailExtractor creates an extractor whose page navigations are
// bounded by navTimeout.
func NewDetailExtractor(navTimeout time.Duration) *DetailExtractor {
	return &DetailExtractor{navTimeout: navTimeout}
}

// Extract navigates the session to the listing URL and produces exactly
// one record. On navigation timeout the record carries only the URL and
// timestamp; no further extraction is attempted.
func (e *DetailExtractor) Extract(ctx context.Context, page browser.Page, listingURL string) *models.ListingRecord {
	rec := models.NewListingRecord(listingURL)

	navCtx, cancel := context.WithTimeout(ctx, e.navTimeout)
	defer cancel()
	if err := page.Navigate(navCtx, listingURL); err != nil {
		log.Warn("Listing navigation failed", "url", listingURL, "err", err)
		return rec
	}

	e.expandCollapsedContent(ctx, page)

	rec.Title = e.extractTitle(ctx, page)

	bodyText, err := page.InnerText(ctx, "body")
	if err != nil {
		log.Debug("Body text capture failed", "url", listingURL, "err", err)
		bodyText = ""
	}
	rec.LicenseCode = services.ExtractLicense(bodyText)

	pageHTML, err := page.OuterHTML(ctx, "html")
	if err != nil {
		log.Debug("Page HTML capture failed", "url", listingURL, "err", err)
		pageHTML = ""
	}
	host := services.ExtractHostInfo(pageHTML)
	rec.HostName = host.Name
	rec.HostURL = host.ProfileURL

	// Prefer the host-section text; the whole page is a noisier fallback.
	statsText := host.SectionText
	if statsText == "" {
		statsText = bodyText
	}
	stats := services.ParseHostStats(statsText)
	if rec.HostRating == "" {
		rec.HostRating = stats.Rating
	}
	if rec.HostReviews == "" {
		rec.HostReviews = stats.Reviews
	}
	if rec.HostYears == "" {
		rec.HostYears = stats.Years
	}

	return rec
}

// expandCollapsedContent clicks every known "show more" button. A label
// with no buttons, or a button that refuses the click, is skipped.
func (e *DetailExtractor) expandCollapsedContent(ctx context.Context, page browser.Page) {
	for _, label := range expandLabels {
		if _, err := page.ClickButtonsByLabel(ctx, label); err != nil {
			log.Debug("Expand click failed", "label", label, "err", err)
		}
	}
	time.Sleep(expandSettle)
}

// extractTitle takes the first non-empty of the top-level heading and the
// document title.
func (e *DetailExtractor) extractTitle(ctx context.Context, page browser.Page) string {
	if title, err := page.InnerText(ctx, "h1"); err == nil && title != "" {
		return title
	}
	title, err := page.Title(ctx)
	if err != nil {
		return ""
	}
	return title
}
