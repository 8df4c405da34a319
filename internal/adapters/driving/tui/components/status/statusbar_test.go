package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar_StartsIdle(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateIdle, bar.State())
}

func TestBar_ResultsStateShowsMatchCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(7)

	assert.Contains(t, bar.View(), "7 matches")
}

func TestBar_ErrorStateShowsMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("index unavailable")

	assert.Contains(t, bar.View(), "Error: index unavailable")
}

func TestBar_SearchingState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSearching)

	assert.Contains(t, bar.View(), "Searching...")
}

func TestBar_ClearResetsEverything(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetResultCount(3)

	bar.Clear()

	assert.Equal(t, StateIdle, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
}

func TestBar_IdleHintsIncludeOpenKey(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "/: search")
}
