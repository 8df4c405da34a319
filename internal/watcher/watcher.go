// Package watcher monitors the meeting-log corpus for file changes and
// triggers rebuilds.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// debounceDelay is how long the corpus must stay quiet before a rebuild.
// Rebuilds are whole-corpus (the cross-document passes need every record),
// so a burst of saves coalesces into one build.
const debounceDelay = 2 * time.Second

// Watch monitors corpusDir and invokes rebuild after changes settle.
// It blocks until ctx is done or the watcher fails.
func Watch(ctx context.Context, corpusDir string, rebuild func()) error {
	if _, err := os.Stat(corpusDir); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrCorpusMissing, corpusDir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := walkDirs(corpusDir)
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			logger.Warn("Could not watch %s: %v", d, err)
		}
	}
	logger.Info("Watching %d directories in %s", len(dirs), corpusDir)

	deb := newDebouncer(debounceDelay, rebuild)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !isMeetingDoc(event.Name) {
				// New year directories appear over time; watch them too.
				if event.Has(fsnotify.Create) && !skipDir(filepath.Base(event.Name)) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := w.Add(event.Name); err != nil {
							logger.Warn("Could not watch %s: %v", event.Name, err)
						}
					}
				}
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logger.Debug("Corpus change: %s %s", event.Op, event.Name)
				deb.trigger()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// isMeetingDoc reports whether a changed path can affect the build.
func isMeetingDoc(path string) bool {
	return strings.HasSuffix(path, ".md") && filepath.Base(path) != "README.md"
}

// skipDir filters hidden and VCS directories from watching.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

// walkDirs collects corpusDir and every non-hidden subdirectory.
func walkDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}

// debouncer coalesces triggers into one fn call per quiet window.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
