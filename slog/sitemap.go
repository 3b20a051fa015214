package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap discovery run performed by
// the service it wraps.
type LoggingSitemapService struct {
	next   mcp.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService wraps next so every discovery is logged.
func NewLoggingSitemapService(next mcp.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs calls the wrapped service, recording the URL count and
// elapsed time.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *mcp.URLFilter) (urls []string, err error) {
	begin := time.Now()
	defer func() {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
