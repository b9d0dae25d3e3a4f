package summarize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment splits the content window into sentences and list items and keeps
// the ones that look like prose: longer than MinBulletLength characters and
// containing whitespace. Order follows the window.
func (s *Summarizer) Segment(window string) []string {
	var bullets []string
	for _, frag := range splitSentences(window) {
		frag = stripListMarker(frag)
		if utf8.RuneCountInString(frag) <= s.cfg.MinBulletLength {
			continue
		}
		if strings.IndexFunc(frag, unicode.IsSpace) < 0 {
			continue
		}
		bullets = append(bullets, frag)
	}
	return bullets
}

// splitSentences cuts text at whitespace runs that follow '.', '?' or '!',
// and at a lone '*' surrounded by single whitespace characters. The
// delimiting whitespace is dropped; the punctuation stays with its sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var parts []string
	start := 0

	for i := 0; i < len(runes); {
		if !unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		if i > 0 && isTerminal(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}

		if i+2 < len(runes) && runes[i+1] == '*' && unicode.IsSpace(runes[i+2]) {
			parts = append(parts, string(runes[start:i]))
			i += 3
			start = i
			continue
		}

		i++
	}

	return append(parts, string(runes[start:]))
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// stripListMarker removes a leading '*' bullet and the whitespace around it.
func stripListMarker(frag string) string {
	frag = strings.TrimLeftFunc(frag, unicode.IsSpace)
	frag = strings.TrimPrefix(frag, "*")
	return strings.TrimSpace(frag)
}
