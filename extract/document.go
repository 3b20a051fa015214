package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/flyingcloud-code/mcp"
)

// Parse builds a document tree from raw HTML.
//
// Parsing is browser-style lenient: unclosed tags, stray end tags and
// similar real-world damage are auto-corrected rather than rejected.
// Only input that cannot produce a tree at all fails, with EPARSE.
func Parse(rawHTML string) (*html.Node, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mcp.Errorf(mcp.EPARSE, "cannot parse empty document")
	}
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mcp.Errorf(mcp.EPARSE, "cannot parse document: %s", err)
	}
	return doc, nil
}

// Remove detaches a node and its subtree from its parent.
// It is a no-op if the node is already detached. Sibling order of the
// remaining children is preserved.
func Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Text returns the visible text under a node in document order.
// Script, style and comment content is skipped. When collapse is true,
// runs of whitespace become a single space and the result is trimmed.
func Text(n *html.Node, collapse bool) string {
	var sb strings.Builder
	writeText(&sb, n)
	if !collapse {
		return sb.String()
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// Body returns the document's <body> element, or nil if there is none.
// The lenient parser synthesizes a body for any parseable input, so nil
// only occurs for trees built by other means.
func Body(doc *html.Node) *html.Node {
	return findElement(doc, "body")
}

// Title returns the page title from the <title> element, or "" if the
// document has none.
func Title(doc *html.Node) string {
	if t := findElement(doc, "title"); t != nil {
		return Text(t, true)
	}
	return ""
}

// FirstHeading returns the text of the first h1-h6 element under n,
// or "" if there is none.
func FirstHeading(n *html.Node) string {
	var heading *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				heading = n
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	if heading == nil {
		return ""
	}
	return Text(heading, true)
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
