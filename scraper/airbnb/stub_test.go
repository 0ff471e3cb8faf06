package airbnb

import (
	"context"

	"listings-crawler/browser"
)

// stubPage implements browser.Page with overridable behavior per method.
// Unset methods return zero values.
type stubPage struct {
	navigateFn     func(ctx context.Context, url string) error
	titleFn        func(ctx context.Context) (string, error)
	innerTextFn    func(ctx context.Context, selector string) (string, error)
	outerHTMLFn    func(ctx context.Context, selector string) (string, error)
	anchorHrefsFn  func(ctx context.Context, substr string) ([]string, error)
	clickFn        func(ctx context.Context, label string) (int, error)
	scrollByFn     func(ctx context.Context, pixels int) error
	scrollHeightFn func(ctx context.Context) (int64, error)
	closeFn        func()
}

func (p *stubPage) Navigate(ctx context.Context, url string) error {
	if p.navigateFn != nil {
		return p.navigateFn(ctx, url)
	}
	return nil
}

func (p *stubPage) Title(ctx context.Context) (string, error) {
	if p.titleFn != nil {
		return p.titleFn(ctx)
	}
	return "", nil
}

func (p *stubPage) InnerText(ctx context.Context, selector string) (string, error) {
	if p.innerTextFn != nil {
		return p.innerTextFn(ctx, selector)
	}
	return "", nil
}

func (p *stubPage) OuterHTML(ctx context.Context, selector string) (string, error) {
	if p.outerHTMLFn != nil {
		return p.outerHTMLFn(ctx, selector)
	}
	return "", nil
}

func (p *stubPage) AnchorHrefs(ctx context.Context, substr string) ([]string, error) {
	if p.anchorHrefsFn != nil {
		return p.anchorHrefsFn(ctx, substr)
	}
	return nil, nil
}

func (p *stubPage) ClickButtonsByLabel(ctx context.Context, label string) (int, error) {
	if p.clickFn != nil {
		return p.clickFn(ctx, label)
	}
	return 0, nil
}

func (p *stubPage) ScrollBy(ctx context.Context, pixels int) error {
	if p.scrollByFn != nil {
		return p.scrollByFn(ctx, pixels)
	}
	return nil
}

func (p *stubPage) ScrollHeight(ctx context.Context) (int64, error) {
	if p.scrollHeightFn != nil {
		return p.scrollHeightFn(ctx)
	}
	return 0, nil
}

func (p *stubPage) Close() {
	if p.closeFn != nil {
		p.closeFn()
	}
}

// stubFactory hands out pages from a function.
type stubFactory struct {
	newPageFn func(ctx context.Context) (browser.Page, error)
}

func (f *stubFactory) NewPage(ctx context.Context) (browser.Page, error) {
	if f.newPageFn != nil {
		return f.newPageFn(ctx)
	}
	return &stubPage{}, nil
}

func (f *stubFactory) Close() {}
