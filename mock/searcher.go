package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Searcher = (*Searcher)(nil)

// Searcher represents a mock of mcp.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]*mcp.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]*mcp.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
