package memstore

import (
	"bytes"
	"testing"

	"github.com/pablin202/kvstore/lib/kv"
	kvtesting "github.com/pablin202/kvstore/lib/kv/testing"
)

func Test(t *testing.T) {
	kvtesting.RunStoreTests(t, "MemoryStore", func(t testing.TB) kv.IStore {
		return New()
	})
}

func Benchmark(b *testing.B) {
	kvtesting.RunStoreBenchmarks(b, "MemoryStore", func(t testing.TB) kv.IStore {
		return New()
	})
}

// TestValueCopySemantics verifies the store is decoupled from caller buffers.
func TestValueCopySemantics(t *testing.T) {
	store := New()
	defer store.Close()

	original := []byte("original")
	if err := store.Put("copy-key", original); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Mutating the caller's buffer must not affect the stored value.
	original[0] = 'X'

	stored, err := store.Get("copy-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(stored, []byte("original")) {
		t.Errorf("Stored value was mutated through the caller's buffer: %s", stored)
	}

	// Mutating the returned slice must not affect the stored value either.
	stored[0] = 'Y'
	again, err := store.Get("copy-key")
	if err != nil {
		t.Fatalf("Second Get failed: %v", err)
	}
	if !bytes.Equal(again, []byte("original")) {
		t.Errorf("Get should return a copy, not a reference: %s", again)
	}
}
