package mock

import "github.com/fwojciec/linkvault"

var _ linkvault.Converter = (*Converter)(nil)

// Converter is a mock implementation of linkvault.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
