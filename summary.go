package linkvault

// Summary is the title and highlight bullets extracted from a page.
type Summary struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Summarizer turns raw page text into a Summary.
// Implementations never fail: degenerate input yields a fallback summary.
type Summarizer interface {
	Summarize(raw string) *Summary
}
