// Package readability provides an alternative content extraction engine
// backed by go-readability.
package readability

import (
	"strings"

	"github.com/flyingcloud-code/mcp"
	"github.com/go-shiori/go-readability"
)

var _ mcp.Extractor = (*Extractor)(nil)

// Extractor runs Mozilla's readability algorithm over a page. It
// tends to do better than heuristic scoring on article-shaped pages
// and worse on reference documentation.
type Extractor struct{}

// NewExtractor returns a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article content and title readability found.
func (e *Extractor) Extract(rawHTML string) (*mcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mcp.Errorf(mcp.EPARSE, "cannot parse empty document")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, mcp.Errorf(mcp.EEXTRACT, "readability: %s", err)
	}

	return &mcp.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
