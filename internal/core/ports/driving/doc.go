// Package driving defines the interfaces through which the outside world
// calls INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// CLI commands, the TUI, and the web server depend on these interfaces,
// and core services implement them.
//
//   - BuildService: One-shot and watch-mode corpus builds
//   - SearchEngine: Query the built index with ranked results
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, service, or normaliser package
package driving
