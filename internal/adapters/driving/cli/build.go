package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
	"github.com/custodia-labs/minutes-cli/internal/watcher"
)

var (
	buildForce bool
	buildWatch bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site and search index from the meeting corpus",
	Long: `Walks the meeting-log corpus, extracts a record per document, and
emits the meeting pages, manifests, and search index.

Unchanged documents are served from the build cache unless --force is
given. With --watch the command keeps running and rebuilds when the
corpus changes.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "rebuild every document, bypassing the cache")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when the corpus changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if cfg == nil || cfg.Build == nil {
		return errors.New("build service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doBuild := func(force bool) error {
		start := time.Now()
		result, err := cfg.Build.Build(ctx, driving.BuildOptions{Force: force})
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		cmd.Printf("Indexed %d meetings (%d cached, %d skipped) in %s\n",
			result.Indexed, result.Cached, result.Skipped,
			time.Since(start).Round(time.Millisecond))
		return nil
	}

	if err := doBuild(buildForce); err != nil {
		return err
	}

	if !buildWatch {
		return nil
	}

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")
	err := watcher.Watch(ctx, cfg.CorpusDir, func() {
		if err := doBuild(false); err != nil {
			logger.Warn("Rebuild failed: %v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
