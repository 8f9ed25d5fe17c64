package htmltomarkdown_test

import (
	"testing"

	"github.com/AlexJubs/helpcenter"
	"github.com/AlexJubs/helpcenter/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements helpcenter.Converter at compile time.
var _ helpcenter.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<div class="richText"><h2>Create a page</h2><p>Pages hold your content.</p></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Create a page")
		assert.Contains(t, md, "Pages hold your content.")
	})

	t.Run("keeps lists intact", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li><p>Click New page</p></li><li><p>Give it a title</p></li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Click New page")
		assert.Contains(t, md, "- Give it a title")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Plan</th><th>Price</th></tr></thead><tbody><tr><td>Plus</td><td>$10</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Plan")
		assert.Contains(t, md, "| Plus")
	})

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/help/databases">databases</a>.</p>`

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://www.notion.so")).Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[databases](https://www.notion.so/help/databases)")
	})

	t.Run("keeps relative links without domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/help/databases">databases</a>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[databases](/help/databases)")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
	})
}
