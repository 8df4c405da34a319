package driving

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// BuildOptions controls a corpus build.
type BuildOptions struct {
	// Force bypasses the build cache and re-extracts every document.
	Force bool
}

// BuildResult summarises one completed build.
type BuildResult struct {
	// Meetings is the full built corpus, newest first.
	Meetings []*domain.Meeting

	// Indexed is the number of search index entries written.
	Indexed int

	// Skipped is the number of documents that failed extraction and
	// were dropped.
	Skipped int

	// Cached is the number of documents served from the build cache.
	Cached int
}

// BuildService runs the corpus pipeline: extract every document, apply the
// corpus-wide passes, and emit the archive and search index.
type BuildService interface {
	// Build runs one full build of the configured corpus.
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}
