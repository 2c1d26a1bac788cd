package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/letmevibethatforyou/sitesearch"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, sitesearch.ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		if err := store.Set(ctx, "key", []byte("value")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := store.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "value" {
			t.Errorf("Expected %q, got %q", "value", got)
		}
	})

	t.Run("Upsert", func(t *testing.T) {
		if err := store.Set(ctx, "key", []byte("updated")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := store.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "updated" {
			t.Errorf("Expected %q, got %q", "updated", got)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := store.Remove(ctx, "key"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if _, err := store.Get(ctx, "key"); !errors.Is(err, sitesearch.ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound after remove, got %v", err)
		}
	})

	t.Run("RemoveMissingIsNoop", func(t *testing.T) {
		if err := store.Remove(ctx, "never-existed"); err != nil {
			t.Errorf("Expected removing a missing key to succeed, got %v", err)
		}
	})

	t.Run("ReopenKeepsData", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "persist.db")

		first, err := Open(path)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if err := first.Set(ctx, "durable", []byte("yes")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := first.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		second, err := Open(path)
		if err != nil {
			t.Fatalf("Reopen failed: %v", err)
		}
		defer second.Close()

		got, err := second.Get(ctx, "durable")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "yes" {
			t.Errorf("Expected %q, got %q", "yes", got)
		}
	})
}
