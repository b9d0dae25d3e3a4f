package linkvault

import "context"

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	// Fetch returns the HTML served for url. Browser-backed implementations
	// return the DOM after scripts have run.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
