// Package main is the entrypoint for the minutes CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	configfile "github.com/custodia-labs/minutes-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/indexsource"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/render/goldmark"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/site"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/services"
	"github.com/custodia-labs/minutes-cli/internal/logger"
	"github.com/custodia-labs/minutes-cli/internal/normalisers/meetinglog"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	corpusDir := conf.GetString(configfile.KeyCorpusPath)
	outputDir := conf.GetString(configfile.KeyOutputDir)

	renderer := goldmark.New()
	extractor := meetinglog.New(renderer)

	writer, err := site.NewWriter(outputDir, renderer)
	if err != nil {
		return fmt.Errorf("preparing site writer: %w", err)
	}

	// The build cache is an optimisation; a failure to open it means
	// every build extracts the full corpus.
	var cache driven.BuildCache
	if store, cacheErr := sqlite.NewStore(conf.GetString(configfile.KeyCacheDir)); cacheErr != nil {
		logger.Warn("Build cache unavailable: %v", cacheErr)
	} else {
		cache = store
		defer store.Close()
	}

	pipeline := services.NewBuildPipeline(corpusDir, extractor, cache, writer)

	// The search engine reads the emitted index, from disk by default
	// or over HTTP when a base URL is configured.
	var source driven.IndexSource
	if baseURL := conf.GetString(configfile.KeyBaseURL); baseURL != "" {
		source = indexsource.NewHTTP(baseURL)
	} else {
		source = indexsource.NewFile(filepath.Join(outputDir, site.IndexFileName))
	}
	engine := services.NewSearchService(source)

	cli.SetVersion(version)
	cli.SetConfig(&cli.Config{
		Build:      pipeline,
		Search:     engine,
		CorpusDir:  corpusDir,
		SiteDir:    outputDir,
		ListenAddr: conf.GetString(configfile.KeyListenAddr),
		Debounce:   time.Duration(conf.GetInt(configfile.KeyDebounceMS)) * time.Millisecond,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}
