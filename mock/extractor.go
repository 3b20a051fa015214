package mock

import "github.com/flyingcloud-code/mcp"

var _ mcp.Extractor = (*Extractor)(nil)

// Extractor represents a mock of mcp.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mcp.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mcp.ExtractResult, error) {
	return e.ExtractFn(html)
}
