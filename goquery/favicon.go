// Package goquery reads HTML documents with goquery: the icon a page
// declares for itself and the links in a browser bookmark export.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkvault"
)

// Ensure FaviconFinder implements linkvault.FaviconFinder at compile time.
var _ linkvault.FaviconFinder = (*FaviconFinder)(nil)

// faviconSelectors are tried in order; the first usable href wins.
var faviconSelectors = []string{
	`link[rel~="icon"]`,
	`link[rel="apple-touch-icon"]`,
	`link[rel="apple-touch-icon-precomposed"]`,
}

// FaviconFinder locates <link rel="icon"> declarations.
type FaviconFinder struct{}

// NewFaviconFinder creates a new FaviconFinder.
func NewFaviconFinder() *FaviconFinder {
	return &FaviconFinder{}
}

// FindFavicon returns the absolute URL of the first declared icon, or ""
// when the page declares none or the HTML cannot be parsed.
func (f *FaviconFinder) FindFavicon(html string, baseURL string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range faviconSelectors {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			found = resolveHTTP(base, href)
			return found == ""
		})
		if found != "" {
			return found
		}
	}

	return ""
}

// resolveHTTP resolves href against base and returns it only when the
// result is an http or https URL.
func resolveHTTP(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
