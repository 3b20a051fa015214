// Package htmltomarkdown renders HTML as Markdown using the
// html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Converter = (*Converter)(nil)

// Converter produces CommonMark output: ATX headings (#, ##, ...),
// nested lists, [text](href) links and pipe tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter builds the converter with the base, commonmark and
// table plugins. The result is safe for concurrent use, so a single
// instance serves all requests.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as Markdown. Blank input is rejected with
// EINVALID rather than producing an empty document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mcp.Errorf(mcp.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
