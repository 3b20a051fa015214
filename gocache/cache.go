// Package gocache provides an in-memory document cache backed by
// patrickmn/go-cache. It is the zero-setup alternative to the SQLite
// cache: entries expire after a TTL and are lost on restart.
package gocache

import (
	"context"
	"sort"
	"time"

	"github.com/flyingcloud-code/mcp"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long cached documents stay valid when no TTL is
// given.
const DefaultTTL = 15 * time.Minute

var _ mcp.DocumentCache = (*Cache)(nil)

// Cache implements mcp.DocumentCache in process memory.
type Cache struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewCache creates an in-memory cache whose entries expire after ttl.
// A ttl <= 0 keeps entries until they are deleted or replaced.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{c: gocache.New(gocache.NoExpiration, 0), ttl: gocache.NoExpiration}
	}
	// The janitor sweeps at twice the TTL; expired entries are also
	// filtered lazily on every read.
	return &Cache{c: gocache.New(ttl, 2*ttl), ttl: ttl}
}

// key builds the composite cache key. The separator cannot occur in a
// URL, so distinct (url, format) pairs never collide.
func key(url string, format mcp.Format) string {
	return url + "\x00" + string(format)
}

// GetDocument retrieves the cached document for a URL and format.
func (c *Cache) GetDocument(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error) {
	v, ok := c.c.Get(key(url, format))
	if !ok {
		return nil, mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	doc := v.(mcp.Document)
	return &doc, nil
}

// PutDocument stores a document, replacing any existing entry for the
// same URL and format. The cache keeps its own copy, so later changes
// to doc do not leak into cached reads.
func (c *Cache) PutDocument(ctx context.Context, doc *mcp.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}
	doc.ContentHash = mcp.HashContent(doc.Content)

	c.c.Set(key(doc.URL, doc.Format), *doc, c.ttl)
	return nil
}

// DeleteDocument removes all cached formats of a URL.
func (c *Cache) DeleteDocument(ctx context.Context, url string) error {
	found := false
	for _, format := range mcp.Formats() {
		k := key(url, format)
		if _, ok := c.c.Get(k); ok {
			c.c.Delete(k)
			found = true
		}
	}
	if !found {
		return mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	return nil
}

// ListDocuments retrieves cached documents matching the filter, most
// recently fetched first.
func (c *Cache) ListDocuments(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error) {
	var docs []*mcp.Document
	for _, item := range c.c.Items() {
		doc := item.Object.(mcp.Document)
		if filter.URL != nil && doc.URL != *filter.URL {
			continue
		}
		if filter.Format != nil && doc.Format != *filter.Format {
			continue
		}
		docs = append(docs, &doc)
	}

	// Items() iterates a map, so impose the same order the SQLite cache
	// returns: newest first, URL and format break ties.
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].FetchedAt.Equal(docs[j].FetchedAt) {
			return docs[i].FetchedAt.After(docs[j].FetchedAt)
		}
		if docs[i].URL != docs[j].URL {
			return docs[i].URL < docs[j].URL
		}
		return docs[i].Format < docs[j].Format
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(docs) {
			return nil, nil
		}
		docs = docs[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(docs) {
		docs = docs[:filter.Limit]
	}

	return docs, nil
}

// PurgeDocuments removes every cached document.
func (c *Cache) PurgeDocuments(ctx context.Context) (int, error) {
	n := len(c.c.Items())
	c.c.Flush()
	return n, nil
}
