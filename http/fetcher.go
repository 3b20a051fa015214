// Package http provides HTTP-backed implementations of the domain
// services: page fetching, web search, weather lookups and sitemap
// discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/flyingcloud-code/mcp"
)

// DefaultFetchTimeout bounds each page request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to origin servers. Some sites
// serve reduced or blocked content to unknown agents, so this mimics a
// mainstream browser.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var _ mcp.Fetcher = (*Fetcher)(nil)

// Fetcher downloads pages over plain HTTP. JavaScript is not
// executed, so client-rendered pages yield only their static shell.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with every
// request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher builds a Fetcher with the defaults, adjusted by opts.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch GETs the URL and returns the body. 404 responses map to
// ENOTFOUND; any other non-200 status or transport failure maps to
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", mcp.Errorf(mcp.EINVALID, "invalid URL %q: %s", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", mcp.Errorf(mcp.EUNAVAILABLE, "fetch %s: %s", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", mcp.Errorf(mcp.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", mcp.Errorf(mcp.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", mcp.Errorf(mcp.EUNAVAILABLE, "read %s: %s", url, err)
	}

	return string(body), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
