// Package metacache persists extracted title metadata between runs, keyed
// by file path and content fingerprint.
package metacache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// schemaVersion is stored in PRAGMA user_version. Older caches are dropped
// on open.
const schemaVersion = 2

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("metadata cache closed")

// Entry is the cached metadata for one file revision. The payload is
// YAML so front matter scalars decode to the same types as the source.
type Entry struct {
	Frontmatter  map[string]any `yaml:"frontmatter,omitempty"`
	FirstHeading string         `yaml:"first_heading,omitempty"`
}

// Store is a SQLite-backed metadata cache. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the cache database at path.
// Use ":memory:" for a throwaway cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases consistent across calls.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version < schemaVersion {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS file_meta"); err != nil {
			return fmt.Errorf("drop outdated cache: %w", err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS file_meta (
		path TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		payload BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

// Get returns the entry for path when its stored fingerprint matches.
// A missing or stale entry reports false without error.
func (s *Store) Get(ctx context.Context, path, fingerprint string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Entry{}, false, ErrClosed
	}

	var stored string
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT fingerprint, payload FROM file_meta WHERE path = ?", path,
	).Scan(&stored, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("query entry: %w", err)
	}
	if stored != fingerprint {
		return Entry{}, false, nil
	}

	var e Entry
	if err := yaml.Unmarshal(payload, &e); err != nil {
		return Entry{}, false, fmt.Errorf("decode entry: %w", err)
	}
	return e, true, nil
}

// Put stores the entry for path, replacing any previous revision.
func (s *Store) Put(ctx context.Context, path, fingerprint string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	payload, err := yaml.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO file_meta (path, fingerprint, payload, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET fingerprint = excluded.fingerprint, payload = excluded.payload, updated_at = excluded.updated_at`,
		path, fingerprint, payload, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

// Prune removes entries whose path is not in keep and returns how many
// were deleted.
func (s *Store) Prune(ctx context.Context, keep []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	live := make(map[string]struct{}, len(keep))
	for _, p := range keep {
		live[p] = struct{}{}
	}

	rows, err := s.db.QueryContext(ctx, "SELECT path FROM file_meta")
	if err != nil {
		return 0, fmt.Errorf("query paths: %w", err)
	}
	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan path: %w", err)
		}
		if _, ok := live[p]; !ok {
			stale = append(stale, p)
		}
	}
	if err := rows.Close(); err != nil {
		return 0, fmt.Errorf("close rows: %w", err)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate paths: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	for _, p := range stale {
		if _, err := tx.ExecContext(ctx, "DELETE FROM file_meta WHERE path = ?", p); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("delete entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(stale), nil
}

// Len returns the number of cached entries.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM file_meta").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
