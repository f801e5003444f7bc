package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	r := NewMarkdownRenderer()

	t.Run("renders basic markdown", func(t *testing.T) {
		html, err := r.Render("# Heading\n\nSome **bold** text.")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1")
		assert.Contains(t, html, "<strong>bold</strong>")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		html, err := r.Render("| A | B |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, html, "<table>")
	})

	t.Run("renders strikethrough", func(t *testing.T) {
		html, err := r.Render("~~gone~~")
		require.NoError(t, err)
		assert.Contains(t, html, "<del>gone</del>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		// The tag is dropped; its body survives only as inert text.
		html, err := r.Render("hello <script>alert('x')</script> world")
		require.NoError(t, err)
		assert.NotContains(t, html, "<script")
		assert.Contains(t, html, "hello")
		assert.Contains(t, html, "world")
	})

	t.Run("strips event handlers from inline html", func(t *testing.T) {
		html, err := r.Render(`<a href="https://example.com" onclick="steal()">link</a>`)
		require.NoError(t, err)
		assert.NotContains(t, html, "onclick")
	})
}

func TestMarkdownRenderer_Sanitize(t *testing.T) {
	r := NewMarkdownRenderer()

	t.Run("keeps plain text", func(t *testing.T) {
		assert.Equal(t, "looks good to me", r.Sanitize("looks good to me"))
	})

	t.Run("removes scripts", func(t *testing.T) {
		out := r.Sanitize(`before<script>alert("x")</script>after`)
		assert.NotContains(t, out, "script")
		assert.Contains(t, out, "before")
		assert.Contains(t, out, "after")
	})

	t.Run("keeps harmless formatting", func(t *testing.T) {
		out := r.Sanitize("<em>emphasis</em>")
		assert.Equal(t, "<em>emphasis</em>", out)
	})
}
