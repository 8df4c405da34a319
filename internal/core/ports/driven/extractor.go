package driven

import (
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// MeetingExtractor turns one raw corpus document into a Meeting.
//
// relPath is the document's path relative to the corpus root and drives the
// filename conventions (title, date, slug). raw is the file content as read
// from disk.
//
// Extraction is per-document: corpus-wide passes such as language pairing and
// title disambiguation happen later in the pipeline and are not the
// extractor's concern.
type MeetingExtractor interface {
	// Extract normalises raw and derives all per-document metadata.
	// Returns domain.ErrInvalidInput (wrapped) when the document cannot
	// produce a valid Meeting, for example an unparseable date in a
	// filename that promises one.
	Extract(relPath string, raw []byte) (*domain.Meeting, error)
}
