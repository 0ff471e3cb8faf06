package airbnb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageHTML = `
<html><body>
<h1>Chaleureux studio au Plateau</h1>
<section>
  <h2>Faites connaissance avec votre Hôte</h2>
  <span>Hôte depuis 2015 · 4,95 sur 5 · 1 378 commentaires</span>
  <a href="/users/show/321?ref=listing">Profil</a>
</section>
</body></html>`

func TestExtractFullRecord(t *testing.T) {
	page := &stubPage{
		innerTextFn: func(_ context.Context, selector string) (string, error) {
			switch selector {
			case "h1":
				return "Chaleureux studio au Plateau", nil
			case "body":
				return "Chaleureux studio au Plateau enregistrement BUS-MAG-42KDF Hôte depuis 2015", nil
			}
			return "", nil
		},
		outerHTMLFn: func(context.Context, string) (string, error) {
			return listingPageHTML, nil
		},
	}

	extractor := NewDetailExtractor(time.Second)
	rec := extractor.Extract(context.Background(), page, "https://example.com/rooms/321")

	assert.Equal(t, "https://example.com/rooms/321", rec.ListingURL)
	assert.Equal(t, "Chaleureux studio au Plateau", rec.Title)
	assert.Equal(t, "BUS-MAG-42KDF", rec.LicenseCode)
	assert.Equal(t, "/users/show/321", rec.HostURL)
	assert.NotEmpty(t, rec.HostName)
	assert.Equal(t, "4.95", rec.HostRating)
	assert.Equal(t, "1378", rec.HostReviews)
	assert.NotEmpty(t, rec.HostYears)
	assert.False(t, rec.ScrapedAt.IsZero())
}

func TestExtractPartialRecordOnNavigationTimeout(t *testing.T) {
	var queriedAfterFailure bool
	page := &stubPage{
		navigateFn: func(context.Context, string) error {
			return context.DeadlineExceeded
		},
		innerTextFn: func(context.Context, string) (string, error) {
			queriedAfterFailure = true
			return "", nil
		},
	}

	extractor := NewDetailExtractor(time.Second)
	rec := extractor.Extract(context.Background(), page, "https://example.com/rooms/99")

	require.NotNil(t, rec)
	assert.Equal(t, "https://example.com/rooms/99", rec.ListingURL)
	assert.False(t, rec.ScrapedAt.IsZero())
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.LicenseCode)
	assert.Empty(t, rec.HostURL)
	assert.Empty(t, rec.HostName)
	assert.Empty(t, rec.HostRating)
	assert.Empty(t, rec.HostYears)
	assert.Empty(t, rec.HostReviews)
	assert.False(t, queriedAfterFailure, "no extraction after a failed navigation")
}

func TestExtractTitleFallsBackToDocumentTitle(t *testing.T) {
	page := &stubPage{
		titleFn: func(context.Context) (string, error) {
			return "Appartement à Québec - Example", nil
		},
	}

	extractor := NewDetailExtractor(time.Second)
	rec := extractor.Extract(context.Background(), page, "https://example.com/rooms/5")

	assert.Equal(t, "Appartement à Québec - Example", rec.Title)
}

func TestExtractClicksEveryExpansionLabel(t *testing.T) {
	var labels []string
	page := &stubPage{
		clickFn: func(_ context.Context, label string) (int, error) {
			labels = append(labels, label)
			return 0, errors.New("not clickable")
		},
	}

	extractor := NewDetailExtractor(time.Second)
	rec := extractor.Extract(context.Background(), page, "https://example.com/rooms/7")

	require.NotNil(t, rec)
	assert.Equal(t, []string{"Lire la suite", "Afficher plus", "En savoir plus"}, labels)
}

func TestExtractHostStatsFallBackToBodyText(t *testing.T) {
	page := &stubPage{
		innerTextFn: func(_ context.Context, selector string) (string, error) {
			if selector == "body" {
				return "Jean vous accueille. 4,5 sur 5. 52 commentaires.", nil
			}
			return "", nil
		},
		// No host section in the page HTML.
		outerHTMLFn: func(context.Context, string) (string, error) {
			return "<html><body><p>rien</p></body></html>", nil
		},
	}

	extractor := NewDetailExtractor(time.Second)
	rec := extractor.Extract(context.Background(), page, "https://example.com/rooms/8")

	assert.Equal(t, "4.5", rec.HostRating)
	assert.Equal(t, "52", rec.HostReviews)
	assert.Empty(t, rec.HostURL)
	assert.Empty(t, rec.HostName)
}
