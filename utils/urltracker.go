package utils

import (
	"strings"
	"sync"
)

// StripQuery normalizes a listing or profile href by dropping the query
// string. Two hrefs differing only by query parameters map to the same key.
func StripQuery(rawURL string) string {
	if i := strings.Index(rawURL, "?"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// URLTracker accumulates unique URLs preserving first-seen order.
type URLTracker struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	order []string
}

// NewURLTracker creates a new tracker
func NewURLTracker() *URLTracker {
	return &URLTracker{seen: make(map[string]struct{})}
}

// Add returns true if the URL is new (not seen before), false if duplicate
func (t *URLTracker) Add(url string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.seen[url]; exists {
		return false
	}
	t.seen[url] = struct{}{}
	t.order = append(t.order, url)
	return true
}

// AddAll adds every URL in the slice, keeping first-seen order across calls.
func (t *URLTracker) AddAll(urls []string) {
	for _, u := range urls {
		t.Add(u)
	}
}

// URLs returns the tracked URLs in the order they were first added.
func (t *URLTracker) URLs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Count returns the number of tracked URLs
func (t *URLTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}
