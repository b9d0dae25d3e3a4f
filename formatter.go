package linkvault

import "strings"

// FormatBookmarks renders bookmarks as a markdown document: one section per
// bookmark with its link, summary bullets and tags.
func FormatBookmarks(bookmarks []*Bookmark) string {
	if len(bookmarks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		var sb strings.Builder
		sb.WriteString("## [" + bookmarkHeader(b) + "](" + b.URL + ")\n")
		for _, bullet := range b.Summary {
			sb.WriteString("\n- " + bullet)
		}
		if len(b.Tags) > 0 {
			sb.WriteString("\n\nTags: " + strings.Join(b.Tags, ", "))
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

// bookmarkHeader uses the title if available, falls back to the URL.
func bookmarkHeader(b *Bookmark) string {
	if b.Title == "" {
		return b.URL
	}
	return b.Title
}
