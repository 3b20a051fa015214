package mcp

import "context"

// Fetcher downloads the raw HTML behind a URL.
type Fetcher interface {
	// Fetch GETs the URL and returns the response body. The context
	// carries timeout and cancellation. A 404 maps to ENOTFOUND;
	// other transport or server failures map to EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher, such as idle
	// connections. Call it once the fetcher is no longer needed.
	Close() error
}
