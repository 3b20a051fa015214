package mcp

import "context"

// Asker answers natural language questions, using the web tools
// (content extraction, search, weather, date helpers) as needed.
type Asker interface {
	// Ask answers a natural language question. Implementations may
	// perform multiple tool calls before producing an answer.
	Ask(ctx context.Context, question string) (string, error)
}
