package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// Ensure BuildPipeline implements the interface.
var _ driving.BuildService = (*BuildPipeline)(nil)

// BuildPipeline runs the full corpus build: walk the source tree, extract
// every document, apply the corpus-wide passes, and emit the archive.
type BuildPipeline struct {
	corpusDir string
	extractor driven.MeetingExtractor
	cache     driven.BuildCache
	site      driven.SiteWriter
}

// NewBuildPipeline creates a build pipeline. cache may be nil, in which
// case every build extracts the full corpus. site may be nil for callers
// that only need the in-memory result.
func NewBuildPipeline(
	corpusDir string,
	extractor driven.MeetingExtractor,
	cache driven.BuildCache,
	site driven.SiteWriter,
) *BuildPipeline {
	return &BuildPipeline{
		corpusDir: corpusDir,
		extractor: extractor,
		cache:     cache,
		site:      site,
	}
}

// Build runs one full build of the corpus.
//
// A missing corpus directory is a warning, not a failure: the result is
// empty and the host process keeps going. A document that fails extraction
// is skipped with a warning and the rest of the corpus is unaffected; that
// is the only case where a document is dropped.
func (p *BuildPipeline) Build(ctx context.Context, opts driving.BuildOptions) (*driving.BuildResult, error) {
	logger.Section("Corpus Build")

	if info, err := os.Stat(p.corpusDir); err != nil || !info.IsDir() {
		logger.Warn("Meeting log directory not found: %s", p.corpusDir)
		return &driving.BuildResult{}, nil
	}

	paths, err := p.collectPaths()
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}

	result := &driving.BuildResult{}
	meetings := make([]*domain.Meeting, 0, len(paths))
	for _, relPath := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meeting, cached, err := p.extractOne(ctx, relPath, opts.Force)
		if err != nil {
			logger.Warn("Error parsing %s: %v", relPath, err)
			result.Skipped++
			continue
		}
		if cached {
			result.Cached++
		}
		meetings = append(meetings, meeting)
	}

	logger.Info("Found %d meeting logs", len(meetings))

	meetings = PairLanguages(meetings)
	meetings = DisambiguateTitles(meetings)
	meetings = SortByDateDesc(meetings)

	entries := BuildIndex(meetings)
	result.Meetings = meetings
	result.Indexed = len(entries)

	if p.site != nil {
		if err := p.site.WriteIndex(ctx, entries); err != nil {
			return nil, fmt.Errorf("write search index: %w", err)
		}
		if err := p.site.WriteManifest(ctx, meetings); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		if err := p.site.WritePages(ctx, meetings); err != nil {
			return nil, fmt.Errorf("write pages: %w", err)
		}
	}

	if p.cache != nil {
		if err := p.cache.Prune(ctx, paths); err != nil {
			logger.Debug("Cache prune failed: %v", err)
		}
	}

	return result, nil
}

// collectPaths walks the corpus tree and returns corpus-relative paths of
// every markdown document, in walk order. README files are documentation
// about the corpus, not meeting logs.
func (p *BuildPipeline) collectPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(p.corpusDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".md" || d.Name() == "README.md" {
			return nil
		}
		rel, err := filepath.Rel(p.corpusDir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}

// extractOne produces the Meeting for one document, consulting the build
// cache unless force is set. Panics during extraction are contained here
// so one malformed document cannot abort the corpus.
func (p *BuildPipeline) extractOne(ctx context.Context, relPath string, force bool) (meeting *domain.Meeting, fromCache bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			meeting, fromCache = nil, false
			err = fmt.Errorf("extraction panic: %v", r)
		}
	}()

	raw, err := os.ReadFile(filepath.Join(p.corpusDir, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, false, err
	}

	hash := contentHash(raw)
	if p.cache != nil && !force {
		cached, err := p.cache.Lookup(ctx, relPath, hash)
		if err == nil {
			return cached, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Cache lookup failed for %s: %v", relPath, err)
		}
	}

	meeting, err = p.extractor.Extract(relPath, raw)
	if err != nil {
		return nil, false, err
	}

	if p.cache != nil {
		if err := p.cache.Save(ctx, relPath, hash, meeting); err != nil {
			logger.Debug("Cache save failed for %s: %v", relPath, err)
		}
	}
	return meeting, false, nil
}

func contentHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
