// Package filekv provides a Storage implementation that keeps one file per
// key inside a directory. It is the simplest durable adapter, suitable for
// CLI usage where history should survive between runs.
package filekv

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/letmevibethatforyou/sitesearch"
)

// Store persists values as files under a base directory.
type Store struct {
	dir string
}

var _ sitesearch.Storage = (*Store)(nil)

// New creates a file-backed store rooted at dir, creating the directory if
// needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create storage directory %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Get implements sitesearch.Storage.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitesearch.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}
	return data, nil
}

// Set implements sitesearch.Storage.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}
	return nil
}

// Remove implements sitesearch.Storage.
func (s *Store) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove key %s", key)
	}
	return nil
}

// path maps a key to a file name, escaping characters that are not safe in
// file names.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}
