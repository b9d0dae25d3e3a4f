package linkvault

import "strings"

// ParseTags splits a comma-separated tag list. Tags are trimmed and
// lowercased; empty entries and repeats are dropped.
func ParseTags(s string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, tag := range strings.Split(s, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
