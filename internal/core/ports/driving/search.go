package driving

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// SearchEngine answers ranked queries against the built index.
//
// The index is loaded lazily on the first query and cached for the
// engine's lifetime. A failed load leaves the engine inert: every query
// returns empty results without error.
type SearchEngine interface {
	// Search returns up to the engine's result limit of entries matching
	// query, highest score first, ties in index order. Queries shorter
	// than the minimum length return no results.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}
