package summarize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule is a single rewrite applied to the whole document.
type rule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

func (r rule) apply(text string) string {
	return r.pattern.ReplaceAllString(text, r.replacement)
}

// \s is ASCII-only in RE2; \p{Z} adds no-break and other Unicode spaces.
var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	bareURLRe      = regexp.MustCompile(`https?://[^\s\p{Z}]+|www\.[^\s\p{Z}]+`)
	pageHistoryRe  = regexp.MustCompile(`\d+[\s\p{Z}]*KB[\s\p{Z}]*\([^)]+\)[\s\p{Z}]*-[\s\p{Z}]*[\d:]+,[\s\p{Z}]*\d+[\s\p{Z}]*\w+[\s\p{Z}]*\d+`)
	markupRe       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)|###|===|\[x\]`)
)

// buildRules returns the rewrite rules in the order they must run.
// Each rule sees the output of the previous one.
func buildRules(phrases []string) []rule {
	rules := []rule{
		{name: "markdown-link", pattern: markdownLinkRe, replacement: "${1}"},
		{name: "bare-url", pattern: bareURLRe},
		{name: "page-history", pattern: pageHistoryRe},
		{name: "markup", pattern: markupRe},
	}

	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) > 0 {
		rules = append(rules, rule{
			name:    "boilerplate",
			pattern: regexp.MustCompile(`(?i)` + strings.Join(quoted, "|")),
		})
	}

	return rules
}

// StripNoise rewrites the document through the noise rules and returns the
// lines that are dense enough in letters to be content, in source order.
func (s *Summarizer) StripNoise(raw string) []string {
	text := raw
	for _, r := range s.rules {
		text = r.apply(text)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s.dense(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// dense reports whether the share of ASCII letters in line exceeds the
// configured ratio. An empty line has no ratio and is never dense.
func (s *Summarizer) dense(line string) bool {
	length := utf8.RuneCountInString(line)
	if length == 0 {
		return false
	}
	return float64(countLetters(line))/float64(length) > s.cfg.MinAlphaRatio
}

func countLetters(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			n++
		}
	}
	return n
}
