package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.ContentService = (*ContentService)(nil)

// ContentService represents a mock of mcp.ContentService.
type ContentService struct {
	GetWebContentFn  func(ctx context.Context, url string, format mcp.Format) (*mcp.WebContent, error)
	ExtractContentFn func(rawHTML string, format mcp.Format) (string, error)
}

func (s *ContentService) GetWebContent(ctx context.Context, url string, format mcp.Format) (*mcp.WebContent, error) {
	return s.GetWebContentFn(ctx, url, format)
}

func (s *ContentService) ExtractContent(rawHTML string, format mcp.Format) (string, error) {
	return s.ExtractContentFn(rawHTML, format)
}
