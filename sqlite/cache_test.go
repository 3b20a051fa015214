package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutDocument(t *testing.T) {
	t.Parallel()

	t.Run("stores document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		doc := &mcp.Document{
			URL:     "https://example.com/docs/page1",
			Format:  mcp.FormatMarkdown,
			Title:   "Page 1",
			Content: "# Page 1\n\nThis is the content.",
		}

		err := cache.PutDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		doc := &mcp.Document{Format: mcp.FormatMarkdown} // missing URL

		err := cache.PutDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, mcp.EINVALID, mcp.ErrorCode(err))
	})

	t.Run("replaces an existing entry for the same url and format", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		first := &mcp.Document{URL: url, Format: mcp.FormatMarkdown, Content: "old content"}
		require.NoError(t, cache.PutDocument(ctx, first))

		second := &mcp.Document{URL: url, Format: mcp.FormatMarkdown, Content: "new content"}
		require.NoError(t, cache.PutDocument(ctx, second))

		found, err := cache.GetDocument(ctx, url, mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "new content", found.Content)

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 1, "replacement should not add a second row")
	})

	t.Run("keeps formats of the same url separate", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
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
}

func TestCache_GetDocument(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		doc := &mcp.Document{
			URL:     "https://example.com/docs/page1",
			Format:  mcp.FormatMarkdown,
			Title:   "Page 1",
			Content: "# Page 1\n\nContent here.",
		}
		require.NoError(t, cache.PutDocument(ctx, doc))

		found, err := cache.GetDocument(ctx, doc.URL, mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.URL, found.URL)
		assert.Equal(t, doc.Format, found.Format)
		assert.Equal(t, doc.Title, found.Title)
		assert.Equal(t, doc.Content, found.Content)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
		assert.WithinDuration(t, doc.FetchedAt, found.FetchedAt, time.Second)
	})

	t.Run("returns ENOTFOUND on cache miss", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		_, err := cache.GetDocument(ctx, "https://example.com/missing", mcp.FormatMarkdown)
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for a format not cached", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))

		_, err := cache.GetDocument(ctx, url, mcp.FormatText)
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})
}

func TestCache_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes all formats of a url", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatText, Content: "Page 1",
		}))

		err := cache.DeleteDocument(ctx, url)
		require.NoError(t, err)

		_, err = cache.GetDocument(ctx, url, mcp.FormatMarkdown)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
		_, err = cache.GetDocument(ctx, url, mcp.FormatText)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})

	t.Run("leaves other urls untouched", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: "https://example.com/a", Format: mcp.FormatMarkdown, Content: "A",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: "https://example.com/b", Format: mcp.FormatMarkdown, Content: "B",
		}))

		require.NoError(t, cache.DeleteDocument(ctx, "https://example.com/a"))

		found, err := cache.GetDocument(ctx, "https://example.com/b", mcp.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, "B", found.Content)
	})

	t.Run("returns ENOTFOUND when nothing cached", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		err := cache.DeleteDocument(ctx, "https://example.com/missing")
		require.Error(t, err)
		assert.Equal(t, mcp.ENOTFOUND, mcp.ErrorCode(err))
	})
}

func TestCache_ListDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns all documents with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := &mcp.Document{
				URL:     fmt.Sprintf("https://example.com/docs/page%d", i+1),
				Format:  mcp.FormatMarkdown,
				Content: fmt.Sprintf("# Page %d", i+1),
			}
			require.NoError(t, cache.PutDocument(ctx, doc))
		}

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("filters by url", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		url := "https://example.com/docs/unique-page"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "unique",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: "https://example.com/docs/other", Format: mcp.FormatMarkdown, Content: "other",
		}))

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, url, docs[0].URL)
	})

	t.Run("filters by format", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		url := "https://example.com/docs/page1"
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatMarkdown, Content: "# Page 1",
		}))
		require.NoError(t, cache.PutDocument(ctx, &mcp.Document{
			URL: url, Format: mcp.FormatText, Content: "Page 1",
		}))

		format := mcp.FormatText
		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{Format: &format})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, mcp.FormatText, docs[0].Format)
	})

	t.Run("orders most recently fetched first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		for i, u := range []string{"https://example.com/oldest", "https://example.com/middle", "https://example.com/newest"} {
			doc := &mcp.Document{
				URL:       u,
				Format:    mcp.FormatMarkdown,
				Content:   "content",
				FetchedAt: base.Add(time.Duration(i) * time.Hour),
			}
			require.NoError(t, cache.PutDocument(ctx, doc))
		}

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://example.com/newest", docs[0].URL)
		assert.Equal(t, "https://example.com/middle", docs[1].URL)
		assert.Equal(t, "https://example.com/oldest", docs[2].URL)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			doc := &mcp.Document{
				URL:     fmt.Sprintf("https://example.com/docs/page%d", i+1),
				Format:  mcp.FormatMarkdown,
				Content: "content",
			}
			require.NoError(t, cache.PutDocument(ctx, doc))
		}

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		// Offset without a limit skips rows but returns the rest.
		docs, err = cache.ListDocuments(ctx, mcp.DocumentFilter{Offset: 3})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})
}

func TestCache_PurgeDocuments(t *testing.T) {
	t.Parallel()

	t.Run("removes everything and reports the count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewCache(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := &mcp.Document{
				URL:     fmt.Sprintf("https://example.com/docs/page%d", i+1),
				Format:  mcp.FormatMarkdown,
				Content: "content",
			}
			require.NoError(t, cache.PutDocument(ctx, doc))
		}

		n, err := cache.PurgeDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		docs, err := cache.ListDocuments(ctx, mcp.DocumentFilter{})
		require.NoError(t, err)
		assert.Empty(t, docs)

		// Purging an empty cache removes nothing.
		n, err = cache.PurgeDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
