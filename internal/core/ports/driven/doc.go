// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - MeetingExtractor: Turns one raw corpus document into a Meeting
//   - MarkdownRenderer: Renders short markdown to inline-safe HTML
//   - SiteWriter: Emits the built archive (pages, manifests, index JSON)
//   - IndexSource: Loads the serialized search index for the engine
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - BuildCache: Skips re-extraction of unchanged documents. Without it,
//     every build extracts the full corpus.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
