package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Foreground)
	assert.NotEmpty(t, theme.Muted)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles_SelectedIsBold(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Selected.GetBold())
	assert.True(t, s.Title.GetBold())
}

func TestDefaultStyles_HighlightUsesSecondaryAccent(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Highlight.GetBold())
	assert.Equal(t, DefaultTheme().Secondary, s.Highlight.GetForeground())
}
