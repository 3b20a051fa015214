package mcp

// ExtractResult is what extraction keeps from a page.
type ExtractResult struct {
	// Title is taken from the <title> element or, failing that, the
	// first top-level heading of the main content.
	Title string

	// ContentHTML is the main content as clean HTML with navigation,
	// footers, sidebars and ads stripped out.
	ContentHTML string
}

// Extractor isolates the main content of an HTML page.
type Extractor interface {
	// Extract parses raw HTML and returns its main content. Document
	// structure (headings, paragraphs, lists, tables, links) survives
	// extraction; boilerplate does not. Returns EPARSE if the input
	// is empty or cannot be parsed.
	Extract(html string) (*ExtractResult, error)
}
