package summarize

import (
	"strings"
	"unicode/utf8"
)

// Localize returns the lines around the longest line joined by single spaces.
// The window spans WindowRadius lines on each side, clamped to the input.
// Ties for the longest line go to the first one.
func (s *Summarizer) Localize(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	longest, longestLen := 0, utf8.RuneCountInString(lines[0])
	for i := 1; i < len(lines); i++ {
		if n := utf8.RuneCountInString(lines[i]); n > longestLen {
			longest, longestLen = i, n
		}
	}

	start := max(0, longest-s.cfg.WindowRadius)
	end := min(len(lines), longest+s.cfg.WindowRadius+1)
	return strings.Join(lines[start:end], " ")
}
