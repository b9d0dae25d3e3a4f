// Package readability finds the article body of a bookmarked page using
// go-readability. It serves as the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/linkvault"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements linkvault.Extractor at compile time.
var _ linkvault.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and article HTML.
// Returns ENOTFOUND when readability produces no content.
func (e *Extractor) Extract(rawHTML string) (*linkvault.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, linkvault.Errorf(linkvault.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, linkvault.Errorf(linkvault.ENOTFOUND, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, linkvault.Errorf(linkvault.ENOTFOUND, "no readable content")
	}

	title := article.Title
	if title == "" {
		title = article.SiteName
	}

	return &linkvault.ExtractResult{
		Title:       strings.TrimSpace(title),
		ContentHTML: article.Content,
	}, nil
}
