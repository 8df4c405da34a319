package driven

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// IndexSource loads the serialized search index.
//
// The search engine fetches the index exactly once per process and caches
// it; a Load failure leaves the engine inert rather than fatal, so
// implementations should wrap domain.ErrIndexUnavailable on any failure.
type IndexSource interface {
	Load(ctx context.Context) ([]domain.IndexEntry, error)
}
