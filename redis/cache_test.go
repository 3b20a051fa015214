package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/flyingcloud-code/mcp"
	mcpredis "github.com/flyingcloud-code/mcp/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *mcpredis.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := mcpredis.NewCache(mr.Addr(), 0)
	require.NoError(t, cache.Open())
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCache_Open(t *testing.T) {
	t.Parallel()

	t.Run("connects to a running server", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		cache := mcpredis.NewCache(mr.Addr(), 0)
		require.NoError(t, cache.Open())
		defer cache.Close()
	})

	t.Run("returns EUNAVAILABLE when the server is down", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cache := mcpredis.NewCache(addr, 0)
		err := cache.Open()
		require.Error(t, err)
		assert.Equal(t, mcp.EUNAVAILABLE, mcp.ErrorCode(err))
	})
}

func TestCache_PutAndGet(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a document", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		doc := &mcp.Document{
			URL:     "https://example.com/docs/page1",
			Format:  mcp.FormatMarkdown,
			Title:   "Page 1",
			Content: "# Page 1\n\nContent here.",
		}
		require.NoError(t, cache.PutDocument(ctx, doc))

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")

		found, err := cache.GetDocument(ctx, doc.URL, mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.Title, found.Title)
		assert.Equal(t, doc.Content, found.Content)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
		assert.WithinDuration(t, doc.FetchedAt, found.FetchedAt, time.Second)
	})

	t.Run("returns ENOTFOUND on cache miss", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)

		_, err := cache.GetDocument(context.Background(), "https://example.com/missing", mcp.FormatMarkdown)
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)

		err := cache.PutDocument(context.Background(), &mcp.Document{Format: mcp.FormatMarkdown})
		require.Error(t, err)
		assert.Equal(t, mcp.EINVALID, mcp.ErrorCode(err))
	})

	t.Run("replaces an existing entry for the same url and format", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "old content",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "new content",
		}))

		found, err := cache.GetDocument(ctx, url, mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "new content", found.Content)

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("keeps formats of the same url separate", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatText, Content: "Page 1",
		}))

		md, err := cache.GetDocument(ctx, url, mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "# Page 1", md.Content)

		txt, err := cache.GetDocument(ctx, url, mcp.FormatText)
		require.NoError(t, err)
		assert.Equal(t, "Page 1", txt.Content)
	})

	t.Run("expires entries after the TTL", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		cache := mcpredis.NewCache(mr.Addr(), time.Minute)
		require.NoError(t, cache.Open())
		t.Cleanup(func() { cache.Close() })
		ctx := context.Background()

		doc := &mcp.Document{
			URL: "https://example.com/docs/page1", Format: mcp.FormatMarkdown, Content: "# Page 1",
		}
		require.NoError(t, cache.PutDocument(ctx, doc))

		_, err := cache.GetDocument(ctx, doc.URL, mcp.FormatMarkdown)
		require.NoError(t, err)

		mr.FastForward(2 * time.Minute)

		_, err = cache.GetDocument(ctx, doc.URL, mcp.FormatMarkdown)
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})
}

func TestCache_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes all formats of a url", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatText, Content: "Page 1",
		}))

		require.NoError(t, cache.DeleteDocument(ctx, url))

		_, err := cache.GetDocument(ctx, url, mcp.FormatMarkdown)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
		_, err = cache.GetDocument(ctx, url, mcp.FormatText)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when nothing cached", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)

		err := cache.DeleteDocument(context.Background(), "https://example.com/missing")
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})
}

func TestCache_ListDocuments(t *testing.T) {
	t.Parallel()

	t.Run("orders most recently fetched first", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		for i, u := range []string{"https://example.com/oldest", "https://example.com/middle", "https://example.com/newest"} {
			require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
				URL:       u,
				Format:    mcp.FormatMarkdown,
				Content:   "content",
				FetchedAt: base.Add(time.Duration(i) * time.Hour),
			}))
		}

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://example.com/newest", docs[0].URL)
		assert.Equal(t, "https://example.com/middle", docs[1].URL)
		assert.Equal(t, "https://example.com/oldest", docs[2].URL)
	})

	t.Run("filters by url and format", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatText, Content: "Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: "https://example.com/docs/other", Format: mcp.FormatMarkdown, Content: "other",
		}))

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{URL: &url})
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		format := mcp.FormatText
		docs, err = cache.ListDocuments(ctx, mcp.DocumentFilter{URL: &url, Format: &format})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, mcp.FormatText, docs[0].Format)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
				URL:     fmt.Sprintf("https://example.com/docs/page%d", i+1),
				Format:  mcp.FormatMarkdown,
				Content: "content",
			}))
		}

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		docs, err = cache.ListDocuments(ctx, mcp.DocumentFilter{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestCache_PurgeDocuments(t *testing.T) {
	t.Parallel()

	t.Run("removes everything and reports the count", func(t *testing.T) {
		t.Parallel()

		cache := setupTestCache(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
				URL:     fmt.Sprintf("https://example.com/docs/page%d", i+1),
				Format:  mcp.FormatMarkdown,
				Content: "content",
			}))
		}

		n, err := cache.PurgeDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		assert.Empty(t, docs)

		n, err = cache.PurgeDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
