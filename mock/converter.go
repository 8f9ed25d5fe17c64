package mock

import "github.com/AlexJubs/helpcenter"

var _ helpcenter.Converter = (*Converter)(nil)

// Converter is a mock implementation of helpcenter.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
