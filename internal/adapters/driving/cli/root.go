// Package cli implements the command-line interface for minutes.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core's driving ports.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// version is the build version, overridable at link time.
var version = "dev"

// Config aggregates the services and paths the commands need.
// The composition root wires it before Execute.
type Config struct {
	// Build runs the extraction pipeline.
	Build driving.BuildService

	// Search scores queries against the emitted index.
	Search driving.SearchEngine

	// CorpusDir is the meeting-log corpus root, used by watch mode.
	CorpusDir string

	// SiteDir is the emitted site directory, used by serve.
	SiteDir string

	// ListenAddr is the default serve address.
	ListenAddr string

	// Debounce is the TUI input quiescence window.
	Debounce time.Duration
}

// cfg holds the wired configuration.
var cfg *Config

// SetConfig installs the wired services for the commands.
func SetConfig(c *Config) {
	cfg = c
}

// SetVersion sets the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "minutes",
	Short: "Build and search the developer meeting archive",
	Long: `minutes turns a directory tree of developer meeting logs into a
static site with a client-side search index.

The corpus layout is one directory per year containing markdown logs
(DevMeeting-YYYY-MM-DD.md and friends). The build extracts titles,
dates, tickets and summaries, renders meeting pages, and emits the
search index consumed by the search and tui commands.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so long-running
// commands (watch, serve, tui) stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
