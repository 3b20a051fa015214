package mcp

import "strings"

// Format identifies an output format for extracted web content.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatText}
}

// ParseFormat converts a user-supplied string into a Format.
// Matching is case-insensitive and ignores surrounding whitespace.
// An empty string selects FormatMarkdown. Returns EUNSUPPORTED for
// anything else.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return FormatMarkdown, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatText:
		return FormatText, nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported format %q (supported: markdown, html, text)", s)
}

// Validate returns an error if the format is not one of the supported
// output formats.
func (f Format) Validate() error {
	switch f {
	case FormatMarkdown, FormatHTML, FormatText:
		return nil
	}
	return Errorf(EUNSUPPORTED, "unsupported format %q (supported: markdown, html, text)", string(f))
}

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }
