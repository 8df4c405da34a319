package driven

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// BuildCache stores extracted meetings keyed by source path and content hash,
// letting repeat builds skip extraction of unchanged documents.
//
// Cached values are the per-document extraction result only. Corpus-wide
// passes (language pairing, title disambiguation) always re-run, so cached
// meetings never carry pair or disambiguation state.
type BuildCache interface {
	// Lookup returns the cached meeting for relPath if its stored content
	// hash matches hash. Returns domain.ErrNotFound (wrapped) on miss.
	Lookup(ctx context.Context, relPath, hash string) (*domain.Meeting, error)

	// Save stores the extraction result for relPath under hash, replacing
	// any previous entry for the same path.
	Save(ctx context.Context, relPath, hash string, meeting *domain.Meeting) error

	// Prune removes entries whose paths are not in keep, typically the set
	// of paths seen during the current build.
	Prune(ctx context.Context, keep []string) error

	// Path returns the location of the backing store, for diagnostics.
	Path() string

	// Close releases the underlying store.
	Close() error
}
