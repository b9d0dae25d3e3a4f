package goquery_test

import (
	"testing"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure FaviconFinder implements linkvault.FaviconFinder.
var _ linkvault.FaviconFinder = (*goquery.FaviconFinder)(nil)

func TestFaviconFinder_FindFavicon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		baseURL string
		want    string
	}{
		{
			name:    "resolves relative icon against page URL",
			html:    `<html><head><link rel="icon" href="/static/favicon.png"></head></html>`,
			baseURL: "https://blog.example.com/posts/1",
			want:    "https://blog.example.com/static/favicon.png",
		},
		{
			name:    "matches shortcut icon",
			html:    `<html><head><link rel="shortcut icon" href="https://cdn.example.com/i.ico"></head></html>`,
			baseURL: "https://example.com/",
			want:    "https://cdn.example.com/i.ico",
		},
		{
			name: "prefers icon over apple touch icon",
			html: `<html><head>
<link rel="apple-touch-icon" href="/apple.png">
<link rel="icon" href="/icon.svg">
</head></html>`,
			baseURL: "https://example.com/",
			want:    "https://example.com/icon.svg",
		},
		{
			name:    "falls back to apple touch icon",
			html:    `<html><head><link rel="apple-touch-icon" href="/apple.png"></head></html>`,
			baseURL: "https://example.com/a/b",
			want:    "https://example.com/apple.png",
		},
		{
			name: "skips data URIs",
			html: `<html><head>
<link rel="icon" href="data:image/png;base64,AAAA">
<link rel="icon" href="/real.ico">
</head></html>`,
			baseURL: "https://example.com/",
			want:    "https://example.com/real.ico",
		},
		{
			name:    "returns empty when page declares no icon",
			html:    `<html><head><title>No icon</title></head></html>`,
			baseURL: "https://example.com/",
			want:    "",
		},
		{
			name:    "returns empty for empty href",
			html:    `<html><head><link rel="icon" href=""></head></html>`,
			baseURL: "https://example.com/",
			want:    "",
		},
	}

	finder := goquery.NewFaviconFinder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, finder.FindFavicon(tt.html, tt.baseURL))
		})
	}
}
