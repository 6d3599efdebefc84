package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compclub/compclub/pkg/db"
)

func TestRender_RichTextPassesMarkupThrough(t *testing.T) {
	block := db.ContentBlock{Kind: db.BlockRichText, Text: "<p>Welcome to <strong>camp</strong></p>"}

	html, err := Render(block)

	require.NoError(t, err)
	assert.Equal(t, `<div class="rich-text"><p>Welcome to <strong>camp</strong></p></div>`, html)
}

func TestRender_DownloadEscapesName(t *testing.T) {
	block := db.ContentBlock{Kind: db.BlockDownload, Name: "Terms & Conditions", File: "/files/terms.pdf"}

	html, err := Render(block)

	require.NoError(t, err)
	assert.Contains(t, html, `href="/files/terms.pdf"`)
	assert.Contains(t, html, "Terms &amp; Conditions")
}

func TestRender_NoEmbedCarriesURLAndCaption(t *testing.T) {
	block := db.ContentBlock{Kind: db.BlockNoEmbed, URL: "https://example.com/video", Caption: "Camp highlights"}

	html, err := Render(block)

	require.NoError(t, err)
	assert.Contains(t, html, `data-url="https://example.com/video"`)
	assert.Contains(t, html, "Camp highlights")
}

func TestRender_LightBoxEscapesCaption(t *testing.T) {
	block := db.ContentBlock{Kind: db.BlockLightBox, File: "/images/group.jpg", Caption: `"Team photo"`}

	html, err := Render(block)

	require.NoError(t, err)
	assert.Contains(t, html, `href="/images/group.jpg"`)
	assert.Contains(t, html, "&#34;Team photo&#34;")
}

func TestRender_UnknownKindErrors(t *testing.T) {
	block := db.ContentBlock{Kind: db.BlockKind("carousel")}

	_, err := Render(block)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "carousel")
}

func TestRenderAll_ConcatenatesInOrder(t *testing.T) {
	blocks := []db.ContentBlock{
		{Kind: db.BlockRichText, Text: "<p>first</p>", Ordering: 0},
		{Kind: db.BlockRichText, Text: "<p>second</p>", Ordering: 1},
	}

	html, err := RenderAll(blocks)

	require.NoError(t, err)
	assert.Equal(t, `<div class="rich-text"><p>first</p></div><div class="rich-text"><p>second</p></div>`, html)
}

func TestRenderAll_StopsOnUnknownKind(t *testing.T) {
	blocks := []db.ContentBlock{
		{Kind: db.BlockRichText, Text: "<p>fine</p>"},
		{Kind: db.BlockKind("bogus")},
	}

	_, err := RenderAll(blocks)

	assert.Error(t, err)
}
