package filekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/letmevibethatforyou/sitesearch"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := New(filepath.Join(t.TempDir(), "kv"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, sitesearch.ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		if err := store.Set(ctx, "search_history", []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := store.Get(ctx, "search_history")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[{"id":"1"}]` {
			t.Errorf("Unexpected value: %q", got)
		}
	})

	t.Run("KeyWithUnsafeCharacters", func(t *testing.T) {
		key := "history/session:1"
		if err := store.Set(ctx, key, []byte("data")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "data" {
			t.Errorf("Unexpected value: %q", got)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := store.Remove(ctx, "search_history"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if _, err := store.Get(ctx, "search_history"); !errors.Is(err, sitesearch.ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound after remove, got %v", err)
		}
	})

	t.Run("RemoveMissingIsNoop", func(t *testing.T) {
		if err := store.Remove(ctx, "never-existed"); err != nil {
			t.Errorf("Expected removing a missing key to succeed, got %v", err)
		}
	})
}
