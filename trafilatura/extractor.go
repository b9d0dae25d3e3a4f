// Package trafilatura finds the article body of a bookmarked page using
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/linkvault"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements linkvault.Extractor at compile time.
var _ linkvault.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Comment sections are dropped because they
// rarely describe what the page is about.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the page title and article HTML.
// Returns ENOTFOUND when no article body can be located, so callers can
// try another extractor.
func (e *Extractor) Extract(rawHTML string) (*linkvault.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, linkvault.Errorf(linkvault.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, linkvault.Errorf(linkvault.ENOTFOUND, "no article content: %v", err)
	}
	if result.ContentNode == nil {
		return nil, linkvault.Errorf(linkvault.ENOTFOUND, "no article content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &linkvault.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
