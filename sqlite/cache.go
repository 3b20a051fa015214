package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/flyingcloud-code/mcp"
	"github.com/google/uuid"
)

var _ mcp.DocumentCache = (*Cache)(nil)

// Cache implements mcp.DocumentCache using SQLite.
type Cache struct {
	db *DB
}

// NewCache creates a new Cache.
func NewCache(db *DB) *Cache {
	return &Cache{db: db}
}

// GetDocument retrieves the cached document for a URL and format.
func (c *Cache) GetDocument(ctx context.Context, url string, format mcp.Format) (*mcp.Document, error) {
	var doc mcp.Document
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, url, format, title, content, content_hash, truncated, fetched_at
		FROM documents
		WHERE url = ? AND format = ?
	`, url, string(format)).Scan(&doc.ID, &doc.URL, &doc.Format, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Truncated, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
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

	// OR REPLACE drops the conflicting (url, format) row, so a re-fetch
	// fully supersedes the previous rendering including its id.
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents (id, url, format, title, content, content_hash, truncated, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URL, string(doc.Format), doc.Title, doc.Content, doc.ContentHash,
		doc.Truncated, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// DeleteDocument removes all cached formats of a URL.
func (c *Cache) DeleteDocument(ctx context.Context, url string) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM documents WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mcp.Errorf(mcp.ENOTFOUND, "document not found")
	}

	return nil
}

// ListDocuments retrieves cached documents matching the filter, most
// recently fetched first.
func (c *Cache) ListDocuments(ctx context.Context, filter mcp.DocumentFilter) ([]*mcp.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, format, title, content, content_hash, truncated, fetched_at FROM documents WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	// Secondary sort keys keep the order stable when timestamps tie.
	query.WriteString(" ORDER BY fetched_at DESC, url ASC, format ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := c.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*mcp.Document
	for rows.Next() {
		var doc mcp.Document
		var fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.URL, &doc.Format, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.Truncated, &fetchedAt); err != nil {
			return nil, err
		}

		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// PurgeDocuments removes every cached document.
func (c *Cache) PurgeDocuments(ctx context.Context) (int, error) {
	result, err := c.db.ExecContext(ctx, "DELETE FROM documents")
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
