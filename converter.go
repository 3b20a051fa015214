package mcp

// Converter turns an HTML fragment into Markdown.
type Converter interface {
	// Convert renders html as Markdown. Callers pass content that has
	// already been through extraction, so the input is expected to be
	// boilerplate-free.
	Convert(html string) (string, error)
}
