package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flyingcloud-code/mcp"
)

// DefaultSearchLimit is the number of results returned when the caller
// does not specify one.
const DefaultSearchLimit = 5

// defaultSearchBaseURL is the DuckDuckGo HTML endpoint. It serves
// server-rendered result pages and needs no API key.
const defaultSearchBaseURL = "https://html.duckduckgo.com/html/"

var _ mcp.Searcher = (*Searcher)(nil)

// Searcher performs web searches by scraping the DuckDuckGo HTML
// endpoint.
type Searcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchBaseURL overrides the search endpoint. Used in tests.
func WithSearchBaseURL(baseURL string) SearcherOption {
	return func(s *Searcher) {
		s.baseURL = baseURL
	}
}

// WithSearchClient overrides the HTTP client.
func WithSearchClient(client *http.Client) SearcherOption {
	return func(s *Searcher) {
		s.client = client
	}
}

// WithSearchUserAgent overrides the User-Agent header.
func WithSearchUserAgent(ua string) SearcherOption {
	return func(s *Searcher) {
		s.userAgent = ua
	}
}

// NewSearcher creates a Searcher against the DuckDuckGo HTML endpoint.
func NewSearcher(opts ...SearcherOption) *Searcher {
	s := &Searcher{
		baseURL:   defaultSearchBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return s
}

// Search runs a web search and returns up to limit results.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]*mcp.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, mcp.Errorf(mcp.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	endpoint := s.baseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, mcp.Errorf(mcp.EINTERNAL, "build search request: %s", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "search %q: %s", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "search provider HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "parse search results: %s", err)
	}

	var results []*mcp.SearchResult
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}
		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		r := &mcp.SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			URL:     resolveRedirect(href),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").Text()),
		}
		if r.Title == "" || r.URL == "" {
			return true
		}
		results = append(results, r)
		return len(results) < limit
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<target> redirect links
// into the destination URL. Unrecognized links pass through unchanged.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
