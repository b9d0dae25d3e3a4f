// Package xbel reads and writes XBEL 1.0, the XML Bookmark Exchange
// Language, using etree.
package xbel

import (
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/linkvault"
)

// Doctype is the XBEL 1.0 document type declaration.
const Doctype = `DOCTYPE xbel PUBLIC "+//IDN python.org//DTD XML Bookmark Exchange Language 1.0//EN//XML" "http://pyxml.sourceforge.net/topics/dtds/xbel.dtd"`

// MetadataOwner marks the <metadata> block written by linkvault.
const MetadataOwner = "linkvault"

// Encode writes bookmarks as an XBEL document titled title. Summary
// bullets become the description, one per line; tags and the favicon go
// into a linkvault metadata block.
func Encode(w io.Writer, title string, bookmarks []*linkvault.Bookmark) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(Doctype)

	root := doc.CreateElement("xbel")
	root.CreateAttr("version", "1.0")
	root.CreateElement("title").SetText(title)

	for _, b := range bookmarks {
		el := root.CreateElement("bookmark")
		el.CreateAttr("href", b.URL)
		el.CreateAttr("id", "b"+b.ID)
		if !b.CreatedAt.IsZero() {
			el.CreateAttr("added", b.CreatedAt.UTC().Format(time.RFC3339))
		}
		if !b.UpdatedAt.IsZero() {
			el.CreateAttr("modified", b.UpdatedAt.UTC().Format(time.RFC3339))
		}

		el.CreateElement("title").SetText(b.Title)

		meta := el.CreateElement("info").CreateElement("metadata")
		meta.CreateAttr("owner", MetadataOwner)
		if b.FaviconURL != "" {
			meta.CreateElement("favicon").SetText(b.FaviconURL)
		}
		tags := meta.CreateElement("tags")
		for _, tag := range b.Tags {
			tags.CreateElement("tag").SetText(tag)
		}

		el.CreateElement("desc").SetText(strings.Join(b.Summary, "\n"))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// Decode reads the bookmarks of an XBEL document, including those nested
// in folders, in document order. Tags are read from a linkvault metadata
// block when present.
func Decode(r io.Reader) ([]linkvault.Link, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, linkvault.Errorf(linkvault.EINVALID, "failed to parse XBEL: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "xbel" {
		return nil, linkvault.Errorf(linkvault.EINVALID, "not an XBEL document")
	}

	links := []linkvault.Link{}
	for _, el := range root.FindElements("//bookmark") {
		href := strings.TrimSpace(el.SelectAttrValue("href", ""))
		if linkvault.ValidateURL(href) != nil {
			continue
		}

		link := linkvault.Link{URL: href, Tags: []string{}}
		if t := el.SelectElement("title"); t != nil {
			link.Title = strings.TrimSpace(t.Text())
		}
		for _, tag := range el.FindElements("./info/metadata[@owner='" + MetadataOwner + "']/tags/tag") {
			link.Tags = append(link.Tags, tag.Text())
		}
		link.Tags = linkvault.ParseTags(strings.Join(link.Tags, ","))

		links = append(links, link)
	}

	return links, nil
}

// IsXBEL reports whether data looks like an XBEL document.
func IsXBEL(data []byte) bool {
	head := string(data[:min(len(data), 512)])
	return strings.Contains(head, "<xbel")
}
