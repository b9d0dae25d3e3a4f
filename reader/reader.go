// Package reader turns a URL into page text locally: fetch the HTML, find
// the article body, render it as markdown and prefix a "Title:" line.
package reader

import (
	"context"
	"strings"

	"github.com/fwojciec/linkvault"
)

// Ensure Reader implements linkvault.PageReader at compile time.
var _ linkvault.PageReader = (*Reader)(nil)

// Reader produces page text in the same shape a remote reader service
// returns, so the summarizer sees one format regardless of source.
type Reader struct {
	Fetcher linkvault.Fetcher

	// Extractors are tried in order. When every extractor fails the whole
	// document is converted instead.
	Extractors []linkvault.Extractor

	Converter linkvault.Converter

	// Favicons is optional.
	Favicons linkvault.FaviconFinder
}

// ReadPage fetches url and returns its text.
func (r *Reader) ReadPage(ctx context.Context, url string) (*linkvault.Page, error) {
	if err := linkvault.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extracted := r.extract(html)

	markdown := ""
	if strings.TrimSpace(extracted.ContentHTML) != "" {
		markdown, err = r.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, err
		}
	}

	page := &linkvault.Page{
		URL:     url,
		Content: FormatDocument(extracted.Title, markdown),
	}
	if r.Favicons != nil {
		page.FaviconURL = r.Favicons.FindFavicon(html, url)
	}

	return page, nil
}

func (r *Reader) extract(html string) *linkvault.ExtractResult {
	for _, ext := range r.Extractors {
		result, err := ext.Extract(html)
		if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
			return result
		}
	}
	return &linkvault.ExtractResult{ContentHTML: html}
}

// FormatDocument joins a title and body into page text. An empty title
// leaves out the "Title:" line.
func FormatDocument(title, body string) string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return body
	}
	return "Title: " + title + "\n\n" + body
}
