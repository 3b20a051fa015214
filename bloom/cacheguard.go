package bloom

import (
	"context"
	"sync"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.DocumentCache = (*CacheGuard)(nil)

// CacheGuard decorates a DocumentCache with a Bloom filter that
// answers definite misses without touching the backing store. That
// keeps cold lookups cheap when the store is slow to say "not here"
// (a SQLite file on disk, a Redis round trip).
//
// Deletes cannot be removed from the filter, so a deleted key falls
// through to the store and misses there; only the short-circuit is
// lost. A guard over a pre-populated store must be warmed with Warm
// before use, otherwise existing entries would be reported as misses.
type CacheGuard struct {
	cache mcp.DocumentCache

	mu sync.Mutex
	f  *Filter
}

// NewCacheGuard wraps cache with a Bloom filter sized for n expected
// documents at the given false positive rate.
func NewCacheGuard(cache mcp.DocumentCache, n uint, fpRate float64) *CacheGuard {
	return &CacheGuard{
		cache: cache,
		f:     NewFilter(n, fpRate),
	}
}

// key builds the filter key for a (url, format) pair. The separator
// cannot occur in a URL.
func key(url string, format mcp.Format) string {
	return url + "\x00" + string(format)
}

// Warm seeds the filter from the backing store. Call it once after
// constructing a guard over a store that already holds documents.
func (g *CacheGuard) Warm(ctx context.Context) error {
	docs, err := g.cache.ListDocuments(ctx, mcp.DocumentFilter{})
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, doc := range docs {
		g.f.Add(key(doc.URL, doc.Format))
	}
	return nil
}

// GetDocument returns ENOTFOUND immediately when the filter rules the
// key out, and delegates to the backing store otherwise.
func (g *CacheGuard) GetDocument(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error) {
	g.mu.Lock()
	maybe := g.f.Test(key(url, format))
	g.mu.Unlock()

	if !maybe {
		return nil, mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	return g.cache.GetDocument(ctx, url, format)
}

// PutDocument stores the document and records its key in the filter.
func (g *CacheGuard) PutDocument(ctx context.Context, doc *mcp.Document) error {
	if err := g.cache.PutDocument(ctx, doc); err != nil {
		return err
	}

	g.mu.Lock()
	g.f.Add(key(doc.URL, doc.Format))
	g.mu.Unlock()
	return nil
}

// DeleteDocument removes all cached formats of a URL from the backing
// store. The filter keeps the key; later lookups miss in the store.
func (g *CacheGuard) DeleteDocument(ctx context.Context, url string) error {
	return g.cache.DeleteDocument(ctx, url)
}

// ListDocuments delegates to the backing store.
func (g *CacheGuard) ListDocuments(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error) {
	return g.cache.ListDocuments(ctx, filter)
}

// PurgeDocuments empties the backing store and resets the filter.
func (g *CacheGuard) PurgeDocuments(ctx context.Context) (int, error) {
	n, err := g.cache.PurgeDocuments(ctx)
	if err != nil {
		return n, err
	}

	g.mu.Lock()
	g.f.Reset()
	g.mu.Unlock()
	return n, nil
}
