package linkvault

import (
	"bufio"
	"io"
	"strings"
)

// Link is a URL to bookmark, as read from an import file.
type Link struct {
	URL   string
	Title string
	Tags  []string
}

// ParseLinkList reads one URL per line. Blank lines and lines starting
// with '#' are skipped; text after the URL on the same line is read as a
// comma-separated tag list.
func ParseLinkList(r io.Reader) ([]Link, error) {
	var links []Link
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rawURL, rest, _ := strings.Cut(line, " ")
		links = append(links, Link{
			URL:  rawURL,
			Tags: ParseTags(rest),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return links, nil
}
