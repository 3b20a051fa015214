package mcp

import (
	"context"
	"regexp"
)

// SitemapService lists the URLs a site advertises through its sitemap.
type SitemapService interface {
	// DiscoverURLs collects page URLs for the site at baseURL. Sitemap
	// locations come from robots.txt directives when present, otherwise
	// from the conventional /sitemap.xml; index files are followed
	// recursively. A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter narrows a discovered URL set by regular expression.
// Include runs first: when non-empty, a URL must match at least one
// pattern to survive. Exclude then removes any URL matching any of
// its patterns.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter
// matches everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
