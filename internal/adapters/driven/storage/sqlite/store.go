package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BuildCache = (*Store)(nil)

// Store is a SQLite-backed build cache. It keeps the per-document
// extraction result keyed by corpus path and content hash, so repeat
// builds only re-extract documents whose content changed.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.minutes/data/cache.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".minutes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// WAL mode for better concurrency between watch-mode rebuilds
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Lookup returns the cached meeting for relPath when the stored content
// hash matches. A stale hash reports domain.ErrNotFound just like a
// missing row.
func (s *Store) Lookup(ctx context.Context, relPath, hash string) (*domain.Meeting, error) {
	var payload string
	row := s.db.QueryRowContext(ctx,
		"SELECT meeting FROM build_cache WHERE path = ? AND hash = ?", relPath, hash)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("querying build cache: %w", err)
	}

	var meeting domain.Meeting
	if err := json.Unmarshal([]byte(payload), &meeting); err != nil {
		return nil, fmt.Errorf("unmarshalling cached meeting: %w", err)
	}
	return &meeting, nil
}

// Save stores the extraction result for relPath, replacing any previous
// entry for the same path.
func (s *Store) Save(ctx context.Context, relPath, hash string, meeting *domain.Meeting) error {
	if meeting == nil {
		return domain.ErrInvalidInput
	}
	payload, err := json.Marshal(meeting)
	if err != nil {
		return fmt.Errorf("marshalling meeting: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO build_cache (path, hash, meeting, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			meeting = excluded.meeting,
			updated_at = CURRENT_TIMESTAMP
	`, relPath, hash, string(payload))
	if err != nil {
		return fmt.Errorf("saving build cache entry: %w", err)
	}
	return nil
}

// Prune removes entries whose paths are not in keep. With an empty keep
// list the whole cache is cleared.
func (s *Store) Prune(ctx context.Context, keep []string) error {
	if len(keep) == 0 {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM build_cache"); err != nil {
			return fmt.Errorf("clearing build cache: %w", err)
		}
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",")
	args := make([]any, len(keep))
	for i, p := range keep {
		args[i] = p
	}

	query := "DELETE FROM build_cache WHERE path NOT IN (" + placeholders + ")"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("pruning build cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
