package goquery

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkvault"
)

// NetscapeDoctype opens every browser bookmark export.
const NetscapeDoctype = "NETSCAPE-Bookmark-file-1"

// IsBookmarkFile reports whether data looks like a browser bookmark export.
func IsBookmarkFile(data []byte) bool {
	head := data[:min(len(data), 512)]
	return strings.Contains(strings.ToUpper(string(head)), NetscapeDoctype)
}

// ParseBookmarkFile reads a Netscape bookmark export, the HTML format
// browsers produce when exporting bookmarks. Every anchor with an http or
// https HREF becomes a Link; its TAGS attribute is read as a tag list.
// Links are returned in document order.
func ParseBookmarkFile(r io.Reader) ([]linkvault.Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, linkvault.Errorf(linkvault.EINVALID, "failed to parse bookmark file: %v", err)
	}

	links := []linkvault.Link{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return
		}

		tags, _ := sel.Attr("tags")
		links = append(links, linkvault.Link{
			URL:   u.String(),
			Title: strings.TrimSpace(sel.Text()),
			Tags:  linkvault.ParseTags(tags),
		})
	})

	return links, nil
}
