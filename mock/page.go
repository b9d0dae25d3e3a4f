package mock

import (
	"context"

	"github.com/fwojciec/linkvault"
)

// Compile-time interface verification.
var (
	_ linkvault.PageReader    = (*PageReader)(nil)
	_ linkvault.FaviconFinder = (*FaviconFinder)(nil)
)

// PageReader is a mock implementation of linkvault.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, url string) (*linkvault.Page, error)
}

func (r *PageReader) ReadPage(ctx context.Context, url string) (*linkvault.Page, error) {
	return r.ReadPageFn(ctx, url)
}

// FaviconFinder is a mock implementation of linkvault.FaviconFinder.
type FaviconFinder struct {
	FindFaviconFn func(html string, baseURL string) string
}

func (f *FaviconFinder) FindFavicon(html string, baseURL string) string {
	return f.FindFaviconFn(html, baseURL)
}
