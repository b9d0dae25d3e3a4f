package mock

import "github.com/fwojciec/linkvault"

var _ linkvault.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of linkvault.Summarizer.
type Summarizer struct {
	SummarizeFn func(raw string) *linkvault.Summary
}

func (s *Summarizer) Summarize(raw string) *linkvault.Summary {
	return s.SummarizeFn(raw)
}
