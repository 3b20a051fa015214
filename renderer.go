package mcp

// Renderer renders extracted content HTML into an output format.
type Renderer interface {
	// Render converts clean content HTML (e.g., from an Extractor) into
	// the requested format. FormatHTML returns the input unchanged,
	// FormatText strips markup down to readable plain text, and
	// FormatMarkdown produces Markdown.
	// Returns EUNSUPPORTED if the format is not supported.
	Render(contentHTML string, format Format) (string, error)
}
