package mock

import "github.com/ajablonski/newsclip"

var _ newsclip.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsclip.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
