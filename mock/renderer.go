package mock

import "github.com/flyingcloud-code/mcp"

var _ mcp.Renderer = (*Renderer)(nil)

// Renderer represents a mock of mcp.Renderer.
type Renderer struct {
	RenderFn func(contentHTML string, format mcp.Format) (string, error)
}

func (r *Renderer) Render(contentHTML string, format mcp.Format) (string, error) {
	return r.RenderFn(contentHTML, format)
}
