// Package redis provides a Redis-backed document cache. It serves
// deployments where several processes share one cache, with the same
// semantics as the SQLite and in-memory backends.
package redis

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/flyingcloud-code/mcp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long cached documents stay valid when no TTL is
// given.
const DefaultTTL = 15 * time.Minute

// keyPrefix namespaces all cache keys so that purging never touches
// other data living in the same Redis database.
const keyPrefix = "doc:"

var _ mcp.DocumentCache = (*Cache)(nil)

// Cache implements mcp.DocumentCache using Redis.
type Cache struct {
	client *redis.Client
	addr   string
	ttl    time.Duration
}

// NewCache creates a Cache for the Redis server at addr. A ttl <= 0
// keeps entries until they are deleted or replaced. Call Open before
// use.
func NewCache(addr string, ttl time.Duration) *Cache {
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{addr: addr, ttl: ttl}
}

// Open connects to the Redis server and verifies the connection.
func (c *Cache) Open() error {
	client := redis.NewClient(&redis.Options{Addr: c.addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return mcp.Errorf(mcp.EUNAVAILABLE, "connect to redis at %s: %s", c.addr, err)
	}

	c.client = client
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// docKey builds the Redis key for a (url, format) pair.
func docKey(url string, format mcp.Format) string {
	return keyPrefix + string(format) + ":" + url
}

// GetDocument retrieves the cached document for a URL and format.
func (c *Cache) GetDocument(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error) {
	val, err := c.client.Get(ctx, docKey(url, format)).Bytes()
	if err == redis.Nil {
		return nil, mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "redis get: %s", err)
	}

	var doc mcp.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, mcp.Errorf(mcp.EINTERNAL, "decode cached document: %s", err)
	}
	return &doc, nil
}

// PutDocument stores a document, replacing any existing entry for the
// same URL and format.
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

	val, err := json.Marshal(doc)
	if err != nil {
		return mcp.Errorf(mcp.EINTERNAL, "encode document: %s", err)
	}

	// A zero TTL stores the key without expiration.
	if err := c.client.Set(ctx, docKey(doc.URL, doc.Format), val, c.ttl).Err(); err != nil {
		return mcp.Errorf(mcp.EUNAVAILABLE, "redis set: %s", err)
	}
	return nil
}

// DeleteDocument removes all cached formats of a URL.
func (c *Cache) DeleteDocument(ctx context.Context, url string) error {
	keys := make([]string, 0, len(mcp.Formats()))
	for _, format := range mcp.Formats() {
		keys = append(keys, docKey(url, format))
	}

	n, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return mcp.Errorf(mcp.EUNAVAILABLE, "redis del: %s", err)
	}
	if n == 0 {
		return mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	return nil
}

// ListDocuments retrieves cached documents matching the filter, most
// recently fetched first.
func (c *Cache) ListDocuments(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error) {
	keys, err := c.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "redis mget: %s", err)
	}

	var docs []*mcp.Document
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// Key expired between SCAN and MGET.
			continue
		}
		var doc mcp.Document
		if err := json.Unmarshal([]byte(s), &doc); err != nil {
			return nil, mcp.Errorf(mcp.EINTERNAL, "decode cached document: %s", err)
		}
		if filter.URL != nil && doc.URL != *filter.URL {
			continue
		}
		if filter.Format != nil && doc.Format != *filter.Format {
			continue
		}
		docs = append(docs, &doc)
	}

	// SCAN order is unspecified, so impose the same order the SQLite
	// cache returns: newest first, URL and format break ties.
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

// PurgeDocuments removes every cached document. Only keys under the
// cache's prefix are touched, never the whole database.
func (c *Cache) PurgeDocuments(ctx context.Context) (int, error) {
	keys, err := c.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	n, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, mcp.Errorf(mcp.EUNAVAILABLE, "redis del: %s", err)
	}
	return int(n), nil
}

// scanKeys collects all cache keys via SCAN.
func (c *Cache) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "redis scan: %s", err)
	}
	return keys, nil
}
