package mcp

import "context"

// TokenCounter estimates how many model tokens a piece of text costs.
// Batch fetches use it to report whether the collected content fits a
// model's context window.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
