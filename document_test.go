package mcp_test

import (
	"testing"

	"github.com/flyingcloud-code/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid document", func(t *testing.T) {
		t.Parallel()

		doc := &mcp.Document{
			URL:     "https://example.com/page",
			Format:  mcp.FormatMarkdown,
			Content: "# Title",
		}

		assert.NoError(t, doc.Validate())
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		doc := &mcp.Document{Format: mcp.FormatText}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, mcp.EINVALID, mcp.ErrorCode(err))
	})

	t.Run("requires supported format", func(t *testing.T) {
		t.Parallel()

		doc := &mcp.Document{URL: "https://example.com", Format: mcp.Format("pdf")}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, mcp.EUNSUPPORTED, mcp.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, mcp.HashContent("# Title"), mcp.HashContent("# Title"))
	})

	t.Run("differs for different content", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, mcp.HashContent("# Title"), mcp.HashContent("# Other"))
	})

	t.Run("returns a fixed-width hex digest", func(t *testing.T) {
		t.Parallel()

		h := mcp.HashContent("")
		assert.Len(t, h, 16)
		assert.Regexp(t, "^[0-9a-f]+$", h)
	})
}
