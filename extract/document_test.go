package extract_test

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/flyingcloud-code/mcp"
	"github.com/flyingcloud-code/mcp/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("returns EPARSE for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Parse("")

		require.Error(t, err)
		assert.Equal(t, mcp.EPARSE, mcp.ErrorCode(err))
	})

	t.Run("returns EPARSE for whitespace-only input", func(t *testing.T) {
		t.Parallel()

		_, err := extract.Parse("  \n\t ")

		require.Error(t, err)
		assert.Equal(t, mcp.EPARSE, mcp.ErrorCode(err))
	})

	t.Run("tolerates unclosed tags", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<p>one<p>two")

		require.NoError(t, err)
		assert.Equal(t, "one two", extract.Text(doc, true))
	})

	t.Run("tolerates stray end tags", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("</div><p>content</p></span>")

		require.NoError(t, err)
		assert.Contains(t, extract.Text(doc, true), "content")
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div>  Hello\n\n  big \t world  </div>")

		require.NoError(t, err)
		assert.Equal(t, "Hello big world", extract.Text(doc, true))
	})

	t.Run("preserves whitespace when collapse is off", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<pre>a\n  b</pre>")

		require.NoError(t, err)
		assert.Contains(t, extract.Text(doc, false), "a\n  b")
	})

	t.Run("skips script and style content", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div><script>var x = 1;</script><style>.a{}</style>visible</div>")

		require.NoError(t, err)
		assert.Equal(t, "visible", extract.Text(doc, true))
	})

	t.Run("skips comments", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div><!-- hidden -->visible</div>")

		require.NoError(t, err)
		assert.Equal(t, "visible", extract.Text(doc, true))
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("detaches node and preserves sibling order", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<ul><li>a</li><li>b</li><li>c</li></ul>")
		require.NoError(t, err)

		items := findAll(doc, "li")
		require.Len(t, items, 3)

		extract.Remove(items[1])

		assert.Equal(t, "a c", extract.Text(doc, true))
	})

	t.Run("is a no-op on detached nodes", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div><p>x</p></div>")
		require.NoError(t, err)

		p := findAll(doc, "p")[0]
		extract.Remove(p)
		extract.Remove(p)

		assert.Empty(t, extract.Text(doc, true))
	})

	t.Run("is a no-op on nil", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() { extract.Remove(nil) })
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns title element text", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<html><head><title>  Page  Title </title></head><body></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Page Title", extract.Title(doc))
	})

	t.Run("returns empty string without title element", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<html><body><h1>Heading</h1></body></html>")

		require.NoError(t, err)
		assert.Empty(t, extract.Title(doc))
	})
}

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	t.Run("returns first heading in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div><p>intro</p><h2>Second</h2><h1>First by level</h1></div>")

		require.NoError(t, err)
		assert.Equal(t, "Second", extract.FirstHeading(doc))
	})

	t.Run("returns empty string without headings", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.Parse("<div><p>just text</p></div>")

		require.NoError(t, err)
		assert.Empty(t, extract.FirstHeading(doc))
	})
}

// findAll returns all elements with the given tag in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}
