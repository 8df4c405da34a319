// Package memory provides in-memory implementations of the storage ports,
// used in tests and wherever persistence is not wanted.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.BuildCache = (*CacheStore)(nil)

type cacheEntry struct {
	hash    string
	meeting domain.Meeting
}

// CacheStore is an in-memory implementation of driven.BuildCache.
type CacheStore struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCacheStore creates a new in-memory build cache.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		entries: make(map[string]cacheEntry),
	}
}

// Lookup returns the cached meeting for relPath when the stored hash
// matches. Stale and missing entries both report domain.ErrNotFound.
func (s *CacheStore) Lookup(_ context.Context, relPath, hash string) (*domain.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[relPath]
	if !ok || entry.hash != hash {
		return nil, domain.ErrNotFound
	}
	meeting := entry.meeting
	return &meeting, nil
}

// Save stores the extraction result for relPath, replacing any previous
// entry for the same path.
func (s *CacheStore) Save(_ context.Context, relPath, hash string, meeting *domain.Meeting) error {
	if meeting == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[relPath] = cacheEntry{hash: hash, meeting: *meeting}
	return nil
}

// Prune removes entries whose paths are not in keep.
func (s *CacheStore) Prune(_ context.Context, keep []string) error {
	keepSet := make(map[string]struct{}, len(keep))
	for _, p := range keep {
		keepSet[p] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for path := range s.entries {
		if _, ok := keepSet[path]; !ok {
			delete(s.entries, path)
		}
	}
	return nil
}

// Len reports the number of cached entries.
func (s *CacheStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Path returns a fixed marker since there is no backing file.
func (s *CacheStore) Path() string {
	return ":memory:"
}

// Close is a no-op for the memory store.
func (s *CacheStore) Close() error {
	return nil
}
