// Package extract identifies the main content of web pages.
// It removes structural boilerplate (navigation, headers, footers, ads)
// from a parsed HTML tree, scores the remaining subtrees to find the
// primary content region, and renders it as HTML, Markdown or plain text.
//
// The heuristics are purely structural and lexical: no JavaScript is
// executed and no visual layout is computed. Rule tables and scoring
// weights are plain data so they can be tuned independently of the
// traversal code.
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// paragraphTags are block elements that carry prose. They drive both
// candidate discovery and scoring in the selector.
var paragraphTags = map[string]bool{
	"p":          true,
	"pre":        true,
	"blockquote": true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
}

// blockTags are elements whose boundaries terminate a line in plain text
// rendering.
var blockTags = map[string]bool{
	"address":    true,
	"article":    true,
	"aside":      true,
	"blockquote": true,
	"dd":         true,
	"div":        true,
	"dl":         true,
	"dt":         true,
	"fieldset":   true,
	"figcaption": true,
	"figure":     true,
	"footer":     true,
	"form":       true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"header":     true,
	"hr":         true,
	"li":         true,
	"main":       true,
	"nav":        true,
	"ol":         true,
	"p":          true,
	"pre":        true,
	"section":    true,
	"table":      true,
	"td":         true,
	"th":         true,
	"tr":         true,
	"ul":         true,
}

// structuralTags frame the document and are never removed by the filter,
// whatever their attributes say.
var structuralTags = map[string]bool{
	"html": true,
	"head": true,
	"body": true,
}

// attrVal returns the value of the named attribute, or "" if absent.
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isLandmark reports whether the element explicitly marks primary
// content: an <article> or <main> element, or a main/article ARIA role.
func isLandmark(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.Data == "article" || n.Data == "main" {
		return true
	}
	switch strings.ToLower(attrVal(n, "role")) {
	case "main", "article":
		return true
	}
	return false
}
