// Package fs writes fetched web content to the local filesystem as a
// directory tree mirroring URL structure.
package fs

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/flyingcloud-code/mcp"
)

// URLToPath maps a page URL to a relative file path rooted at the
// site's host, with the extension chosen by format. A path ending in
// a slash (or the site root) becomes an index file in that directory:
//
//	https://example.com/docs/api/users + markdown → example.com/docs/api/users.md
//	https://example.com/docs/          + markdown → example.com/docs/index.md
//
// Query strings and fragments are ignored.
func URLToPath(rawURL string, format mcp.Format) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", mcp.Errorf(mcp.EINVALID, "invalid url: %s", rawURL)
	}

	ext := extension(format)
	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case path == "":
		return filepath.Join(u.Host, "index"+ext), nil
	case strings.HasSuffix(path, "/"):
		return filepath.Join(u.Host, path, "index"+ext), nil
	default:
		return filepath.Join(u.Host, path+ext), nil
	}
}

func extension(format mcp.Format) string {
	switch format {
	case mcp.FormatHTML:
		return ".html"
	case mcp.FormatText:
		return ".txt"
	default:
		return ".md"
	}
}

// FormatContent renders a fetched page as file content. Markdown gets
// YAML frontmatter recording its origin; other formats are written
// as-is.
func FormatContent(content *mcp.WebContent) string {
	if content.Format != mcp.FormatMarkdown {
		return content.Content
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(content.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(content.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(content.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content.Content)
	return b.String()
}
