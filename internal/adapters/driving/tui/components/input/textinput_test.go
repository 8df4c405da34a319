package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryInput(t *testing.T) {
	qi := NewQueryInput(nil)

	require.NotNil(t, qi)
	assert.Empty(t, qi.Value())
	assert.False(t, qi.Focused())
}

func TestQueryInput_FocusAndBlur(t *testing.T) {
	qi := NewQueryInput(nil)

	qi.Focus()
	assert.True(t, qi.Focused())

	qi.Blur()
	assert.False(t, qi.Focused())
}

func TestQueryInput_AcceptsTypingWhenFocused(t *testing.T) {
	qi := NewQueryInput(nil)
	qi.Focus()

	qi, _ = qi.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gc")})

	assert.Equal(t, "gc", qi.Value())
}

func TestQueryInput_SetValueAndReset(t *testing.T) {
	qi := NewQueryInput(nil)

	qi.SetValue("15626")
	assert.Equal(t, "15626", qi.Value())

	qi.Reset()
	assert.Empty(t, qi.Value())
}

func TestQueryInput_SetWidthClampsToMinimum(t *testing.T) {
	qi := NewQueryInput(nil)

	qi.SetWidth(8)

	assert.Equal(t, 8, qi.Width())
}
