package summarize

import "strings"

// ExtractTitle returns the title carried by the first line that starts with
// the title marker, trimmed of its site suffix. When no line carries the
// marker, the MissingTitle sentinel goes through the same trimming.
func (s *Summarizer) ExtractTitle(raw string) string {
	title := s.cfg.MissingTitle
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, s.cfg.TitleMarker) {
			title = line
			break
		}
	}
	title = strings.TrimSpace(strings.Replace(title, s.cfg.TitleMarker, "", 1))
	return s.TrimTitle(title)
}

// TrimTitle cuts the title at the first separator of the configured list that
// occurs in it. Precedence follows the list order, not the position in the title.
func (s *Summarizer) TrimTitle(title string) string {
	for _, sep := range s.cfg.TitleSeparators {
		if sep == "" {
			continue
		}
		if before, _, found := strings.Cut(title, sep); found {
			return strings.TrimSpace(before)
		}
	}
	return title
}
