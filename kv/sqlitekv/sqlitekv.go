// Package sqlitekv provides a SQLite-backed Storage implementation using
// the cgo-free modernc driver. A single kv table holds all keys, so one
// database file can back several stores.
package sqlitekv

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	// Register sqlite driver.
	_ "modernc.org/sqlite"

	"github.com/letmevibethatforyou/sitesearch"
)

// Store is a SQLite-backed key-value store.
type Store struct {
	db *sql.DB
}

var _ sitesearch.Storage = (*Store)(nil)

// Open opens (or creates) the SQLite database at path and prepares the kv
// table. The caller should call Close on the returned store.
//
// WAL mode allows a reader to load history while a writer persists it; the
// busy timeout avoids spurious "database is locked" errors when two
// processes share the file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "failed to apply %s", pragma)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get implements sitesearch.Storage.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitesearch.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}
	return value, nil
}

// Set implements sitesearch.Storage.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}
	return nil
}

// Remove implements sitesearch.Storage.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "failed to remove key %s", key)
	}
	return nil
}
