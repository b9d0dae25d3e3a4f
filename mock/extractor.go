package mock

import "github.com/fwojciec/linkvault"

var _ linkvault.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkvault.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*linkvault.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*linkvault.ExtractResult, error) {
	return e.ExtractFn(html)
}
