package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Renderer = (*Renderer)(nil)

// Renderer renders clean content HTML into the supported output
// formats. HTML passes through unchanged, plain text comes from a
// block-aware walk of the tree, and Markdown is delegated to a
// Converter.
type Renderer struct {
	converter mcp.Converter
}

// NewRenderer creates a Renderer that delegates markdown conversion
// to the given converter.
func NewRenderer(converter mcp.Converter) *Renderer {
	return &Renderer{converter: converter}
}

// Render implements mcp.Renderer. The format is validated before the
// content is touched, so an unsupported format fails without any
// parsing work.
func (r *Renderer) Render(contentHTML string, format mcp.Format) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}
	switch format {
	case mcp.FormatHTML:
		return contentHTML, nil
	case mcp.FormatText:
		return renderText(contentHTML)
	default:
		out, err := r.converter.Convert(contentHTML)
		if err != nil {
			return "", mcp.Errorf(mcp.EINTERNAL, "render markdown: %s", err)
		}
		return out, nil
	}
}

// renderText strips markup down to plain text. Inline elements join
// into a single line, block boundaries start a new one, so the visual
// structure of paragraphs, headings and list items survives without
// any markup.
func renderText(contentHTML string) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}
	doc, err := html.Parse(strings.NewReader(contentHTML))
	if err != nil {
		return "", mcp.Errorf(mcp.EPARSE, "cannot parse content: %s", err)
	}
	root := doc
	if body := Body(doc); body != nil {
		root = body
	}
	w := &textWriter{}
	w.walk(root)
	w.flush()
	return strings.Join(w.lines, "\n"), nil
}

type textWriter struct {
	lines []string
	buf   strings.Builder
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.buf.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template", "iframe":
			return
		case "br":
			w.flush()
			return
		case "pre":
			w.flush()
			w.writePre(n)
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}
	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		w.flush()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	if block {
		w.flush()
	}
}

// flush collapses the pending inline text into one line.
func (w *textWriter) flush() {
	line := strings.Join(strings.Fields(w.buf.String()), " ")
	w.buf.Reset()
	if line != "" {
		w.lines = append(w.lines, line)
	}
}

// writePre keeps the preformatted block's own line structure instead of
// collapsing it.
func (w *textWriter) writePre(n *html.Node) {
	text := strings.Trim(Text(n, false), "\n")
	for _, line := range strings.Split(text, "\n") {
		w.lines = append(w.lines, strings.TrimRight(line, " \t"))
	}
}
