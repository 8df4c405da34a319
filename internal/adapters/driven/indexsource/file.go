package indexsource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure File implements the interface.
var _ driven.IndexSource = (*File)(nil)

// File loads the search index from a local JSON file.
type File struct {
	path string
}

// NewFile creates a file-backed index source.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and decodes the index file.
func (f *File) Load(_ context.Context) ([]domain.IndexEntry, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", f.path, domain.ErrIndexUnavailable, err)
	}

	var entries []domain.IndexEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", f.path, domain.ErrIndexUnavailable, err)
	}
	return entries, nil
}
