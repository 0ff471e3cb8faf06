package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettle is the post-navigation pause that lets client-side rendering
// finish before the DOM is queried.
const renderSettle = 3 * time.Second

// ChromeFactory owns a single headless Chrome process; every Page it hands
// out is a tab (child context) of that process.
type ChromeFactory struct {
	browserCtx  context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewChromeFactory launches the browser allocator with the crawl's option
// set. The target market is French-Canadian, so the browser advertises the
// fr-CA locale.
func NewChromeFactory(headless bool) *ChromeFactory {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("lang", "fr-CA"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	return &ChromeFactory{
		browserCtx:  browserCtx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}
}

// NewPage opens a fresh tab in the shared browser.
func (f *ChromeFactory) NewPage(ctx context.Context) (Page, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	tabCtx, cancel := chromedp.NewContext(f.browserCtx)
	return &chromePage{ctx: tabCtx, cancel: cancel}, nil
}

// Close shuts down the browser process.
func (f *ChromeFactory) Close() {
	f.cancelCtx()
	f.cancelAlloc()
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions against the tab, honoring the caller's deadline.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := p.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(p.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(renderSettle),
	)
}

func (p *chromePage) Title(ctx context.Context) (string, error) {
	var title string
	err := p.run(ctx, chromedp.Title(&title))
	return title, err
}

func (p *chromePage) InnerText(ctx context.Context, selector string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? el.innerText.trim() : '';
	})()`, selector)

	var text string
	err := p.run(ctx, chromedp.Evaluate(js, &text))
	return text, err
}

func (p *chromePage) OuterHTML(ctx context.Context, selector string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? el.outerHTML : '';
	})()`, selector)

	var html string
	err := p.run(ctx, chromedp.Evaluate(js, &html))
	return html, err
}

func (p *chromePage) AnchorHrefs(ctx context.Context, hrefSubstring string) ([]string, error) {
	js := fmt.Sprintf(`(() => {
		const seen = new Set();
		document.querySelectorAll('a[href]').forEach(a => {
			if (a.href && a.href.includes(%q)) seen.add(a.href);
		});
		return Array.from(seen);
	})()`, hrefSubstring)

	var hrefs []string
	err := p.run(ctx, chromedp.Evaluate(js, &hrefs))
	return hrefs, err
}

func (p *chromePage) ClickButtonsByLabel(ctx context.Context, label string) (int, error) {
	// Clicks land best-effort: a button that throws is skipped, not fatal.
	js := fmt.Sprintf(`(() => {
		let clicked = 0;
		document.querySelectorAll('button').forEach(btn => {
			if (!btn.innerText || !btn.innerText.includes(%q)) return;
			try {
				btn.click();
				clicked++;
			} catch (e) {}
		});
		return clicked;
	})()`, label)

	var clicked int
	err := p.run(ctx, chromedp.Evaluate(js, &clicked))
	return clicked, err
}

func (p *chromePage) ScrollBy(ctx context.Context, pixels int) error {
	js := fmt.Sprintf(`(() => { window.scrollBy(0, %d); return true; })()`, pixels)
	var ok bool
	return p.run(ctx, chromedp.Evaluate(js, &ok))
}

func (p *chromePage) ScrollHeight(ctx context.Context) (int64, error) {
	var height int64
	err := p.run(ctx, chromedp.Evaluate(`document.body.scrollHeight`, &height))
	return height, err
}

func (p *chromePage) Close() {
	p.cancel()
}
