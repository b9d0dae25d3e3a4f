package linkvault

// ExtractResult holds the main content found in an HTML page.
type ExtractResult struct {
	// Title comes from page metadata (title tag, og:title, JSON+LD).
	Title string

	// ContentHTML is the article body with navigation, footers and ads removed.
	ContentHTML string
}

// Extractor locates the main content of an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
