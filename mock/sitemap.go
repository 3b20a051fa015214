package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.SitemapService = (*SitemapService)(nil)

// SitemapService represents a mock of mcp.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *mcp.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *mcp.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
