// Package memkv provides a map-backed Storage implementation, used for
// tests and for sessions that do not need history to outlive the process.
package memkv

import (
	"context"
	"sync"

	"github.com/letmevibethatforyou/sitesearch"
)

// Store is an in-memory key-value store. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ sitesearch.Storage = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get implements sitesearch.Storage.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, sitesearch.ErrKeyNotFound
	}

	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements sitesearch.Storage.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Remove implements sitesearch.Storage.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
