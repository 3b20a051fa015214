// Package tools implements the web content tools on top of the root
// domain interfaces. WebContentService wires fetching, extraction,
// rendering, caching and rate limiting into the single pipeline the
// tools expose.
package tools

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.ContentService = (*WebContentService)(nil)

// WebContentService fetches web pages and turns them into readable
// content. Fetcher, Extractor and Renderer are required; the remaining
// fields are optional and enable caching, rate limiting, retry tuning
// and size bounds when set.
type WebContentService struct {
	Fetcher   mcp.Fetcher
	Extractor mcp.Extractor
	Renderer  mcp.Renderer

	// Cache, if set, serves repeated lookups and stores new renderings.
	Cache mcp.DocumentCache

	// Limiter, if set, throttles fetches per domain.
	Limiter mcp.DomainLimiter

	// TokenCounter, if set, adds token counts to batch results.
	TokenCounter mcp.TokenCounter

	// Logger, if set, receives retry and cache diagnostics.
	Logger LogFunc

	// MaxAge bounds how old a cached rendering may be before it is
	// treated as a miss and refetched. Zero accepts any age.
	MaxAge time.Duration

	// MaxContentLen caps the rendered content size in bytes. Longer
	// content is cut at a rune boundary and flagged as truncated.
	// Zero means no limit.
	MaxContentLen int

	// RetryDelays overrides the backoff schedule for failed fetches.
	// Nil uses DefaultRetryDelays.
	RetryDelays []time.Duration

	// Concurrency bounds parallel fetches in GetAll. Zero or negative
	// means DefaultConcurrency.
	Concurrency int
}

// DefaultConcurrency is the GetAll worker limit when Concurrency is unset.
const DefaultConcurrency = 5

// GetWebContent fetches the page at rawURL, extracts its main content
// and renders it in the requested format. A fresh cached rendering is
// returned without touching the network.
func (s *WebContentService) GetWebContent(ctx context.Context, rawURL string, format mcp.Format) (*mcp.WebContent, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, mcp.Errorf(mcp.EINVALID, "url is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, mcp.Errorf(mcp.EINVALID, "invalid url: %s", rawURL)
	}

	if err := format.Validate(); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if doc, err := s.Cache.GetDocument(ctx, rawURL, format); err == nil && s.fresh(doc) {
			return &mcp.WebContent{
				URL:       doc.URL,
				Title:     doc.Title,
				Format:    doc.Format,
				Content:   doc.Content,
				FetchedAt: doc.FetchedAt,
				Truncated: doc.Truncated,
				FromCache: true,
			}, nil
		}
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.Logger, delays)
	if err != nil {
		return nil, err
	}

	result, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	rendered, err := s.Renderer.Render(result.ContentHTML, format)
	if err != nil {
		return nil, err
	}

	content, truncated := truncate(rendered, s.MaxContentLen)
	fetchedAt := time.Now().UTC()

	if s.Cache != nil {
		doc := &mcp.Document{
			URL:       rawURL,
			Format:    format,
			Title:     result.Title,
			Content:   content,
			FetchedAt: fetchedAt,
			Truncated: truncated,
		}
		// A failed cache write only costs the next request a refetch.
		if err := s.Cache.PutDocument(ctx, doc); err != nil && s.Logger != nil {
			s.Logger("cache write failed for %s: %v", rawURL, err)
		}
	}

	return &mcp.WebContent{
		URL:       rawURL,
		Title:     result.Title,
		Format:    format,
		Content:   content,
		FetchedAt: fetchedAt,
		Truncated: truncated,
	}, nil
}

// ExtractContent extracts the main content from already-fetched raw
// HTML and renders it in the requested format. The format is checked
// before any parsing happens.
func (s *WebContentService) ExtractContent(rawHTML string, format mcp.Format) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}

	result, err := s.Extractor.Extract(rawHTML)
	if err != nil {
		return "", err
	}

	rendered, err := s.Renderer.Render(result.ContentHTML, format)
	if err != nil {
		return "", err
	}

	content, _ := truncate(rendered, s.MaxContentLen)
	return content, nil
}

// fresh reports whether a cached document is recent enough to serve.
func (s *WebContentService) fresh(doc *mcp.Document) bool {
	if s.MaxAge <= 0 {
		return true
	}
	return time.Since(doc.FetchedAt) <= s.MaxAge
}

// truncate cuts content to at most limit bytes without splitting a
// rune. A non-positive limit disables truncation.
func truncate(content string, limit int) (string, bool) {
	if limit <= 0 || len(content) <= limit {
		return content, false
	}
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit], true
}
