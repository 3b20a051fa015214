package mcp

import "context"

// SearchResult is a single web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher performs web searches.
type Searcher interface {
	// Search runs a web search and returns up to limit results.
	// A limit <= 0 selects a provider-specific default.
	// Returns EINVALID if the query is empty, EUNAVAILABLE if the
	// search provider cannot be reached.
	Search(ctx context.Context, query string, limit int) ([]*SearchResult, error)
}
