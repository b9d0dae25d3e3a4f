// Package summarize turns the text of a web page into a short title and a
// list of highlight bullets using fixed heuristics. It performs no I/O and
// keeps no state between calls, so a Summarizer is safe for concurrent use.
//
// The pipeline runs five stages in order: title extraction, noise stripping,
// content localization, sentence segmentation, and result assembly.
package summarize

import "github.com/fwojciec/linkvault"

// Ensure Summarizer implements linkvault.Summarizer at compile time.
var _ linkvault.Summarizer = (*Summarizer)(nil)

// Summarizer runs the summary pipeline with a fixed configuration.
type Summarizer struct {
	cfg   Config
	rules []rule
}

// New creates a Summarizer. Unset fields of cfg take their default values.
func New(cfg Config) *Summarizer {
	cfg = cfg.withDefaults()
	return &Summarizer{
		cfg:   cfg,
		rules: buildRules(cfg.BoilerplatePhrases),
	}
}

// Config returns the effective configuration.
func (s *Summarizer) Config() Config {
	return s.cfg
}

// Summarize extracts a title and highlight bullets from raw page text.
// It accepts any input and always returns at least one bullet.
func (s *Summarizer) Summarize(raw string) *linkvault.Summary {
	title := s.ExtractTitle(raw)
	lines := s.StripNoise(raw)
	window := s.Localize(lines)
	return s.Assemble(title, s.Segment(window))
}

// Assemble builds the result from the filtered candidates, keeping the first
// MaxBullets in document order. Without candidates the fallback bullet is used.
func (s *Summarizer) Assemble(title string, candidates []string) *linkvault.Summary {
	if len(candidates) == 0 {
		return &linkvault.Summary{
			Title:   title,
			Bullets: []string{s.cfg.FallbackBullet},
		}
	}

	n := min(len(candidates), s.cfg.MaxBullets)
	bullets := make([]string, n)
	copy(bullets, candidates[:n])

	return &linkvault.Summary{
		Title:   title,
		Bullets: bullets,
	}
}

var defaultSummarizer = New(DefaultConfig())

// Summarize runs the pipeline with DefaultConfig.
func Summarize(raw string) *linkvault.Summary {
	return defaultSummarizer.Summarize(raw)
}
