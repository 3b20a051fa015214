package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.TokenCounter = (*TokenCounter)(nil)

// TokenCounter represents a mock of mcp.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
