package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.DocumentCache = (*DocumentCache)(nil)

// DocumentCache represents a mock of mcp.DocumentCache.
type DocumentCache struct {
	GetDocumentFn    func(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error)
	PutDocumentFn    func(ctx context.Context, doc *mcp.Document) error
	DeleteDocumentFn func(ctx context.Context, url string) error
	ListDocumentsFn  func(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error)
	PurgeDocumentsFn func(ctx context.Context) (int, error)
}

func (c *DocumentCache) GetDocument(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error) {
	return c.GetDocumentFn(ctx, url, format)
}

func (c *DocumentCache) PutDocument(ctx context.Context, doc *mcp.Document) error {
	return c.PutDocumentFn(ctx, doc)
}

func (c *DocumentCache) DeleteDocument(ctx context.Context, url string) error {
	return c.DeleteDocumentFn(ctx, url)
}

func (c *DocumentCache) ListDocuments(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error) {
	return c.ListDocumentsFn(ctx, filter)
}

func (c *DocumentCache) PurgeDocuments(ctx context.Context) (int, error) {
	return c.PurgeDocumentsFn(ctx)
}
