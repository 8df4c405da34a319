// Package domain defines the core business entities for Minutes.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Meeting: A meeting-log record extracted from one source document
//   - IndexEntry: The flattened search-index projection of a Meeting
//   - SearchResult: An index entry with its query relevance score
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
