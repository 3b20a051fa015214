package mcp

import (
	"context"
	"time"
)

// WebContent is the readable content of a web page in a requested format.
type WebContent struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Format    Format    `json:"format"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`

	// Truncated reports whether Content was cut to fit a size limit.
	Truncated bool `json:"truncated"`

	// FromCache reports whether the content was served from the document
	// cache rather than fetched from the network.
	FromCache bool `json:"fromCache"`
}

// ContentService provides readable main content of web pages.
type ContentService interface {
	// GetWebContent fetches the page at url, extracts its main content
	// and renders it in the requested format. Results may be served
	// from a cache. Returns EINVALID if url is empty, EUNSUPPORTED if
	// the format is unknown.
	GetWebContent(ctx context.Context, url string, format Format) (*WebContent, error)

	// ExtractContent extracts the main content from already-fetched raw
	// HTML and renders it in the requested format. The format is
	// validated before any parsing happens, so an unsupported format
	// fails fast even on malformed HTML.
	ExtractContent(rawHTML string, format Format) (string, error)
}
