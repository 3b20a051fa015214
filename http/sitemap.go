package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/flyingcloud-code/mcp"
)

var _ mcp.SitemapService = (*SitemapService)(nil)

// DefaultMaxURLs caps how many URLs a single discovery returns, so a
// huge sitemap cannot flood the caller.
const DefaultMaxURLs = 5000

// SitemapService collects a site's advertised URLs over HTTP. Sitemap
// locations come from robots.txt directives with /sitemap.xml as the
// fallback; sitemap indexes are walked recursively. Sitemaps that
// cannot be fetched or parsed are skipped rather than failing the
// whole discovery.
type SitemapService struct {
	client  *http.Client
	maxURLs int
}

// SitemapOption configures a SitemapService.
type SitemapOption func(*SitemapService)

// WithSitemapMaxURLs overrides the cap on discovered URLs. A negative
// value disables the cap.
func WithSitemapMaxURLs(n int) SitemapOption {
	return func(s *SitemapService) { s.maxURLs = n }
}

// NewSitemapService builds a SitemapService on the given HTTP client.
// A nil client gets a default one bounded by DefaultFetchTimeout.
func NewSitemapService(client *http.Client, opts ...SitemapOption) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	s := &SitemapService{client: client, maxURLs: DefaultMaxURLs}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs resolves the site's sitemaps and returns their page
// URLs, deduplicated and filtered. The result is an empty slice, not
// nil, when no sitemap could be read.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *mcp.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, mcp.Errorf(mcp.EINVALID, "invalid base URL %q", baseURL)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}
	if root.Scheme == "" {
		root.Scheme = "https"
	}

	sitemaps := s.sitemapsFromRobots(ctx, root)
	if len(sitemaps) == 0 {
		sitemaps = []string{root.JoinPath("sitemap.xml").String()}
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sitemapURL := range sitemaps {
		found, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, u := range found {
			if s.maxURLs >= 0 && len(urls) >= s.maxURLs {
				return urls, nil
			}
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if filter.Match(u) {
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// sitemapsFromRobots extracts Sitemap: directives from the site's
// robots.txt. A missing or unreadable robots.txt yields nothing.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, root *url.URL) []string {
	body, err := s.get(ctx, root.JoinPath("robots.txt").String())
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
			sitemaps = append(sitemaps, sitemapURL)
		}
	}
	return sitemaps
}

// walkSitemap fetches a sitemap and returns its URLs, recursing into
// sitemap indexes. Each sitemap is visited at most once.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, mcp.Errorf(mcp.EPARSE, "parse sitemap %s: %s", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, mcp.Errorf(mcp.EPARSE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range locValues(root, "sitemap") {
			found, err := s.walkSitemap(ctx, child, seen)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				continue
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	return locValues(root, "url"), nil
}

// locValues collects the <loc> children of every <entry> element under
// root, e.g. url/loc in a urlset or sitemap/loc in a sitemapindex.
func locValues(root *etree.Element, entry string) []string {
	var values []string
	for _, el := range root.SelectElements(entry) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, mcp.Errorf(mcp.EINVALID, "invalid URL %q: %s", targetURL, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "fetch %s: %s", targetURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, mcp.Errorf(mcp.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
