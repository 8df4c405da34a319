package memory

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure IndexSource implements the interface.
var _ driven.IndexSource = (*IndexSource)(nil)

// IndexSource serves a fixed set of index entries. Used in tests and by
// the serve command, which builds the index in-process.
type IndexSource struct {
	entries []domain.IndexEntry
	err     error
}

// NewIndexSource creates an index source over the given entries.
func NewIndexSource(entries []domain.IndexEntry) *IndexSource {
	return &IndexSource{entries: entries}
}

// NewFailingIndexSource creates a source whose Load always fails.
func NewFailingIndexSource(err error) *IndexSource {
	return &IndexSource{err: err}
}

// Load returns the fixed entries.
func (s *IndexSource) Load(_ context.Context) ([]domain.IndexEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}
