package gemini

import (
	"context"

	"github.com/flyingcloud-code/mcp"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ mcp.TokenCounter = (*TokenCounter)(nil)

// TokenCounter computes Gemini token counts with a local tokenizer,
// so batch reporting never spends API quota.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the local tokenizer vocabulary for model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, mcp.Errorf(mcp.EINTERNAL, "load tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens reports the token cost of text. Empty text costs zero
// tokens and skips the tokenizer.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	res, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, mcp.Errorf(mcp.EINTERNAL, "count tokens: %v", err)
	}
	return int(res.TotalTokens), nil
}
