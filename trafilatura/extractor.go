// Package trafilatura provides an alternative content extraction engine
// backed by go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/flyingcloud-code/mcp"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ mcp.Extractor = (*Extractor)(nil)

// Extractor runs trafilatura over a page. Compared to the heuristic
// engine it trades speed for precision on news-style pages.
type Extractor struct{}

// NewExtractor returns a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns trafilatura's content region and metadata title.
// Fallback extraction is enabled so pages its primary algorithm
// rejects still produce output.
func (e *Extractor) Extract(rawHTML string) (*mcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mcp.Errorf(mcp.EPARSE, "cannot parse empty document")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, mcp.Errorf(mcp.EEXTRACT, "trafilatura: %s", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, mcp.Errorf(mcp.EEXTRACT, "serialize content region: %s", err)
		}
		contentHTML = buf.String()
	}

	return &mcp.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
