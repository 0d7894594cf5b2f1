package commonmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/render/commonmark"
)

func TestNew_Flavor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, commonmark.FlavorGFM, commonmark.New("gfm").Flavor())
	assert.Equal(t, commonmark.FlavorCommonMark, commonmark.New("commonmark").Flavor())
	assert.Equal(t, commonmark.FlavorCommonMark, commonmark.New("bogus").Flavor())
}

func TestRender_Basic(t *testing.T) {
	t.Parallel()

	html, err := commonmark.New(commonmark.FlavorCommonMark).Render(context.Background(), "# Title\n\nSome **bold**.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

// Adjacent lines join into one paragraph, unlike the lightweight converter.
func TestRender_SoftBreaks(t *testing.T) {
	t.Parallel()

	html, err := commonmark.New(commonmark.FlavorCommonMark).Render(context.Background(), "a\nb")
	require.NoError(t, err)

	assert.Equal(t, "<p>a\nb</p>\n", html)
}

func TestRender_GFMStrikethrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	gfm, err := commonmark.New(commonmark.FlavorGFM).Render(ctx, "~~gone~~")
	require.NoError(t, err)
	assert.Contains(t, gfm, "<del>gone</del>")

	plain, err := commonmark.New(commonmark.FlavorCommonMark).Render(ctx, "~~gone~~")
	require.NoError(t, err)
	assert.NotContains(t, plain, "<del>")
}

func TestRender_Highlighting(t *testing.T) {
	t.Parallel()

	r := commonmark.New(commonmark.FlavorGFM, commonmark.WithHighlighting(true))
	html, err := r.Render(context.Background(), "```go\npackage main\n```")
	require.NoError(t, err)

	assert.Contains(t, html, `class="chroma"`)
}

func TestRender_HighlightingGuessesLanguage(t *testing.T) {
	t.Parallel()

	r := commonmark.New(commonmark.FlavorGFM, commonmark.WithHighlighting(true))
	html, err := r.Render(context.Background(), "```\npackage main\n```")
	require.NoError(t, err)

	assert.Contains(t, html, `<span class="kn">package</span>`)
}

func TestRender_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := commonmark.New(commonmark.FlavorGFM).Render(ctx, "# x")
	require.ErrorIs(t, err, context.Canceled)
}
