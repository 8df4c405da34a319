// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// DebounceElapsed fires when the input has been quiet long enough to
// score. Seq identifies the keystroke that armed the timer; a stale
// Seq means further typing happened and the tick must be ignored.
type DebounceElapsed struct {
	Seq int
}

// SearchCompleted carries scored results back to the model.
// Query is the text that was scored, so results for superseded
// queries can be discarded.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ResultChosen is sent when a highlighted result is activated.
type ResultChosen struct {
	URL string
}
