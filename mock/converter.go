package mock

import "github.com/flyingcloud-code/mcp"

var _ mcp.Converter = (*Converter)(nil)

// Converter represents a mock of mcp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
