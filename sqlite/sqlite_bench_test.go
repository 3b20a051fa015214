package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback
// journal modes. This simulates the cache-fill workload of fetching a
// site page by page.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkDocumentPuts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkDocumentPuts(b, true)
	})
}

func benchmarkDocumentPuts(b *testing.B, useWAL bool) {
	b.Helper()

	// Create a temporary file for the database
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	ctx := context.Background()
	if !useWAL {
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	cache := sqlite.NewCache(db)

	// Reset timer to exclude setup time
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		doc := &mcp.Document{
			URL:     fmt.Sprintf("https://example.com/docs/page%d", i),
			Format:  mcp.FormatMarkdown,
			Title:   fmt.Sprintf("Page %d", i),
			Content: fmt.Sprintf("# Page %d\n\nThis is the content of page %d with some additional text to make it more realistic. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i, i),
		}
		if err := cache.PutDocument(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCacheHits measures lookup performance on a warm cache.
func BenchmarkCacheHits(b *testing.B) {
	const cachedPages = 100

	db := sqlite.NewDB(":memory:")
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	cache := sqlite.NewCache(db)

	for i := 0; i < cachedPages; i++ {
		doc := &mcp.Document{
			URL:     fmt.Sprintf("https://example.com/docs/page%d", i),
			Format:  mcp.FormatMarkdown,
			Title:   fmt.Sprintf("Page %d", i),
			Content: fmt.Sprintf("# Page %d\n\nContent for page %d. Lorem ipsum dolor sit amet.", i, i),
		}
		require.NoError(b, cache.PutDocument(ctx, doc))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		url := fmt.Sprintf("https://example.com/docs/page%d", i%cachedPages)
		if _, err := cache.GetDocument(ctx, url, mcp.FormatMarkdown); err != nil {
			b.Fatal(err)
		}
	}
}
