// Package history maintains the bounded, persisted log of completed
// searches and derives popularity statistics from it. The store owns a
// single key in an injected key-value Storage; persistence failures are
// logged and degrade to an empty history rather than failing the caller.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/letmevibethatforyou/sitesearch"
)

const (
	// DefaultKey is the storage key the history log is persisted under.
	DefaultKey = "search_history"

	// DefaultCapacity is the maximum number of entries kept in the log.
	// Older entries are evicted first.
	DefaultCapacity = 100
)

// Store is the search-history service. It is effectively single-writer:
// concurrent writers race on the underlying key and the last write wins,
// which is accepted for a per-session history log.
type Store struct {
	storage  sitesearch.Storage
	key      string
	capacity int
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key the log is persisted under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithCapacity overrides the maximum number of retained entries.
func WithCapacity(n int) Option {
	return func(s *Store) { s.capacity = n }
}

// WithLogger overrides the logger used for non-fatal persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a history store backed by the given storage capability.
func New(storage sitesearch.Storage, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		key:      DefaultKey,
		capacity: DefaultCapacity,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records a completed search: it trims the query, stamps the current
// time, generates an id, prepends the entry to the persisted log, and
// truncates the log to the newest entries within capacity.
//
// A persistence failure is logged and the in-memory entry is still
// returned, so callers can display the entry regardless of storage state.
func (s *Store) Save(ctx context.Context, query string, resultsCount int, clickedResults []string) sitesearch.HistoryEntry {
	entry := sitesearch.HistoryEntry{
		ID:             ksuid.New().String(),
		Query:          strings.TrimSpace(query),
		Timestamp:      s.now(),
		ResultsCount:   resultsCount,
		ClickedResults: clickedResults,
	}

	entries := append([]sitesearch.HistoryEntry{entry}, s.Load(ctx)...)
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}

	s.persist(ctx, entries)
	return entry
}

// Load returns the persisted log in stored order, most recent first.
// A missing key yields an empty slice; read or decode failures are logged
// and also yield an empty slice.
func (s *Store) Load(ctx context.Context) []sitesearch.HistoryEntry {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, sitesearch.ErrKeyNotFound) {
			s.logger.WarnContext(ctx, "failed to read search history", "key", s.key, "error", err)
		}
		return nil
	}

	var entries []sitesearch.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.WarnContext(ctx, "failed to decode search history", "key", s.key, "error", err)
		return nil
	}

	return entries
}

// Clear empties the persisted log.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Remove(ctx, s.key); err != nil {
		return errors.Wrap(err, "failed to clear search history")
	}
	return nil
}

// RecordClick appends a clicked result id to the history entry with the
// given id and re-persists the log. An unknown entry id is a no-op.
func (s *Store) RecordClick(ctx context.Context, entryID, resultID string) {
	entries := s.Load(ctx)
	for i := range entries {
		if entries[i].ID != entryID {
			continue
		}
		entries[i].ClickedResults = append(entries[i].ClickedResults, resultID)
		s.persist(ctx, entries)
		return
	}
}

// Popular counts occurrences of each distinct query string across the full
// log (exact, case-sensitive comparison) and returns up to limit query
// strings ordered by descending count. Ties keep the order in which the
// queries were first encountered during the count pass.
func (s *Store) Popular(ctx context.Context, limit int) []string {
	if limit <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, entry := range s.Load(ctx) {
		if _, seen := counts[entry.Query]; !seen {
			order = append(order, entry.Query)
		}
		counts[entry.Query]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// persist writes the log back to storage, logging failures as non-fatal.
func (s *Store) persist(ctx context.Context, entries []sitesearch.HistoryEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode search history", "key", s.key, "error", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "failed to persist search history", "key", s.key, "error", err)
	}
}
