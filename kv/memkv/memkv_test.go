package memkv

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/letmevibethatforyou/sitesearch"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New()

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

	t.Run("Overwrite", func(t *testing.T) {
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

	t.Run("ReturnedValueIsACopy", func(t *testing.T) {
		got, err := store.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got[0] = 'X'

		again, err := store.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(again) != "updated" {
			t.Errorf("Stored value was mutated through the returned slice: %q", again)
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
}
