// Package slog provides logging decorators for the root service
// interfaces, built on the standard library's structured logger. Each
// decorator wraps an implementation and logs the operation, its
// duration and its outcome.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs each request made by the fetcher it wraps.
type LoggingFetcher struct {
	next   mcp.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next so every fetch is logged.
func NewLoggingFetcher(next mcp.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch calls the wrapped fetcher, recording the body size and
// elapsed time.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	begin := time.Now()
	defer func() {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return f.next.Fetch(ctx, url)
}

// Close closes the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
