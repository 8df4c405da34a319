package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusMissing indicates the meeting-log corpus directory does not
	// exist. One-shot builds surface a warning and produce an empty result
	// set; watch mode fails fast with this error.
	ErrCorpusMissing = errors.New("corpus directory missing")

	// ErrIndexUnavailable indicates the search index could not be loaded.
	// The search engine stays inert until restarted; there is no retry.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrRendererUnavailable indicates the markdown renderer collaborator
	// is not configured.
	ErrRendererUnavailable = errors.New("markdown renderer unavailable")
)
