// Package htmltomarkdown renders extracted article HTML as markdown text
// using html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/linkvault"
)

// Ensure Converter implements linkvault.Converter at compile time.
var _ linkvault.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Its output keeps one block per line so
// the summarizer can judge each paragraph on its own.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms article HTML into markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", linkvault.Errorf(linkvault.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", linkvault.Errorf(linkvault.EINTERNAL, "convert HTML: %v", err)
	}

	return strings.TrimSpace(md), nil
}
