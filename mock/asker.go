package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Asker = (*Asker)(nil)

// Asker represents a mock of mcp.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
