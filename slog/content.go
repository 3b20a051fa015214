package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.ContentService = (*LoggingContentService)(nil)

// LoggingContentService logs each fetch-extract-render run performed
// by the content service it wraps.
type LoggingContentService struct {
	next   mcp.ContentService
	logger *slog.Logger
}

// NewLoggingContentService wraps next so every operation is logged.
func NewLoggingContentService(next mcp.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// GetWebContent calls the wrapped service, recording the output size,
// cache state and elapsed time.
func (s *LoggingContentService) GetWebContent(ctx context.Context, url string, format mcp.Format) (content *mcp.WebContent, err error) {
	begin := time.Now()
	defer func() {
		var bytes int
		var cached bool
		if content != nil {
			bytes = len(content.Content)
			cached = content.FromCache
		}
		s.logger.Info("web content",
			"url", url,
			"format", string(format),
			"bytes", bytes,
			"cached", cached,
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return s.next.GetWebContent(ctx, url, format)
}

// ExtractContent calls the wrapped service, recording input and
// output sizes.
func (s *LoggingContentService) ExtractContent(rawHTML string, format mcp.Format) (content string, err error) {
	begin := time.Now()
	defer func() {
		s.logger.Info("extract content",
			"format", string(format),
			"in_bytes", len(rawHTML),
			"out_bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return s.next.ExtractContent(rawHTML, format)
}
