// Package fs exports bookmarks as a directory of markdown files.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// URLToPath converts a bookmark URL to a relative file path rooted at the
// URL's host.
// Example: https://example.com/blog/post?id=7 → example.com/blog/post-1a2b3c4d.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}

	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if p == "" || strings.HasSuffix(u.Path, "/") {
		p = path.Join(p, "index")
	}
	p = strings.TrimSuffix(p, ".html")

	// Pages that differ only by query string get distinct files.
	if u.RawQuery != "" {
		p += fmt.Sprintf("-%08x", uint32(xxhash.Sum64String(u.RawQuery)))
	}

	return path.Join(sanitizeHost(u.Host), p) + ".md", nil
}

func sanitizeHost(host string) string {
	return strings.ReplaceAll(host, ":", "_")
}
