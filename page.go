package linkvault

import "context"

// Page is the text of a web page as handed to the Summarizer.
type Page struct {
	URL string

	// Content is the extracted page text. A line starting with "Title:"
	// carries the page title; the rest is markdown-like body text.
	Content string

	// FaviconURL is the icon declared by the page, if the reader found one.
	FaviconURL string
}

// PageReader turns a URL into page text.
// Implementations hide whether a remote reader service, a plain HTTP fetch,
// or a headless browser produced the text.
type PageReader interface {
	// ReadPage fetches the page and returns its text.
	// Returns EUNAVAILABLE when the page cannot be retrieved.
	ReadPage(ctx context.Context, url string) (*Page, error)
}

// FaviconFinder locates the icon a page declares for itself.
type FaviconFinder interface {
	// FindFavicon returns the absolute icon URL declared in html, resolved
	// against baseURL, or "" when the page declares none.
	FindFavicon(html string, baseURL string) string
}
