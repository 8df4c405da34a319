package goldmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParagraph(t *testing.T) {
	r := New()

	html, err := r.Render("fix &middot; add")
	require.NoError(t, err)
	assert.Equal(t, "<p>fix &middot; add</p>", html)
}

func TestRenderLink(t *testing.T) {
	r := New()

	html, err := r.Render("[[Bug #100]](http://x)")
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="http://x">`)
	assert.Contains(t, html, "[Bug #100]")
}

func TestRenderGFMStrikethrough(t *testing.T) {
	r := New()

	html, err := r.Render("~~dropped~~ kept")
	require.NoError(t, err)
	assert.Contains(t, html, "<del>dropped</del>")
}

func TestRenderEmpty(t *testing.T) {
	r := New()

	html, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
