package driven

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// SiteWriter emits the built archive to its output location.
type SiteWriter interface {
	// WriteIndex writes the search index as pretty-printed JSON.
	WriteIndex(ctx context.Context, entries []domain.IndexEntry) error

	// WriteManifest writes the full meeting manifest and the year list.
	WriteManifest(ctx context.Context, meetings []*domain.Meeting) error

	// WritePages renders one HTML page per meeting under the output tree.
	WritePages(ctx context.Context, meetings []*domain.Meeting) error
}
