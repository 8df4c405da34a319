// Package sqlite provides a SQLite-backed build cache using the pure-Go
// modernc.org/sqlite driver, so no CGO is required.
//
// Cached rows hold the JSON-encoded per-document extraction result.
// Corpus-wide passes always re-run at build time, so cached meetings never
// carry pairing or disambiguation state.
package sqlite
