package browser

import "context"

// Page is one renderer session, exclusively owned by a unit of work for its
// lifetime. Every method suspends at the underlying DOM round-trip; Close
// must be called on every exit path.
type Page interface {
	// Navigate loads the URL and waits for the page to settle, bounded by
	// the context deadline.
	Navigate(ctx context.Context, url string) error
	// Title returns the document title.
	Title(ctx context.Context) (string, error)
	// InnerText returns the visible text of the first element matching the
	// CSS selector, or "" if no element matches.
	InnerText(ctx context.Context, selector string) (string, error)
	// OuterHTML returns the serialized HTML of the first element matching
	// the CSS selector, or "" if no element matches.
	OuterHTML(ctx context.Context, selector string) (string, error)
	// AnchorHrefs returns the deduplicated hrefs of all anchors whose href
	// contains the given substring.
	AnchorHrefs(ctx context.Context, hrefSubstring string) ([]string, error)
	// ClickButtonsByLabel clicks every button whose text contains the label
	// and reports how many clicks landed. Buttons that cannot be clicked
	// are skipped.
	ClickButtonsByLabel(ctx context.Context, label string) (int, error)
	// ScrollBy scrolls the viewport down by the given pixel amount.
	ScrollBy(ctx context.Context, pixels int) error
	// ScrollHeight reads the document's current scroll height.
	ScrollHeight(ctx context.Context) (int64, error)
	// Close releases the session.
	Close()
}

// Factory opens isolated Page sessions against a shared browser.
type Factory interface {
	NewPage(ctx context.Context) (Page, error)
	Close()
}
