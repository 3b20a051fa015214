package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher logs each query executed by the searcher it wraps.
type LoggingSearcher struct {
	next   mcp.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher wraps next so every query is logged.
func NewLoggingSearcher(next mcp.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search calls the wrapped searcher, recording the result count and
// elapsed time.
func (s *LoggingSearcher) Search(ctx context.Context, query string, limit int) (results []*mcp.SearchResult, err error) {
	begin := time.Now()
	defer func() {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return s.next.Search(ctx, query, limit)
}
