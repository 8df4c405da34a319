// Package services implements the driving port interfaces.
// Services contain the core business logic: the corpus build pipeline,
// the corpus-wide passes, the index builder, and the ranked search
// engine. They orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services
