package mcp

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document represents a cached rendering of a web page.
type Document struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Format      Format    `json:"format"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`

	// Truncated records whether Content was cut to fit a size limit
	// when it was rendered.
	Truncated bool `json:"truncated,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if err := d.Format.Validate(); err != nil {
		return err
	}
	return nil
}

// HashContent returns the xxHash digest of content as a hex string.
// It is the value stored in Document.ContentHash.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// DocumentCache stores rendered documents keyed by URL and format.
type DocumentCache interface {
	// GetDocument retrieves the cached document for a URL and format.
	// Returns ENOTFOUND on a cache miss.
	GetDocument(ctx context.Context, url string, format Format) (*Document, error)

	// PutDocument stores a document, replacing any existing entry for
	// the same URL and format.
	PutDocument(ctx context.Context, doc *Document) error

	// DeleteDocument removes all cached formats of a URL.
	// Returns ENOTFOUND if nothing was cached for the URL.
	DeleteDocument(ctx context.Context, url string) error

	// ListDocuments retrieves cached documents matching the filter,
	// most recently fetched first.
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// PurgeDocuments removes every cached document and returns the
	// number removed.
	PurgeDocuments(ctx context.Context) (int, error)
}

// DocumentFilter represents a filter for ListDocuments.
type DocumentFilter struct {
	URL    *string `json:"url"`
	Format *Format `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
