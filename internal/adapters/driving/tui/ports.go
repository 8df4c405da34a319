// Package tui provides the interactive search interface for minutes.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search scores queries against the meeting index.
	Search driving.SearchEngine
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchEngine) *Ports {
	return &Ports{Search: search}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchEngine
	}
	return nil
}
