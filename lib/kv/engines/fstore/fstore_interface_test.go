package fstore

import (
	"testing"

	"github.com/pablin202/kvstore/lib/kv"
	kvtesting "github.com/pablin202/kvstore/lib/kv/testing"
)

func Test(t *testing.T) {
	kvtesting.RunStoreTests(t, "FileStore", func(t testing.TB) kv.IStore {
		store, err := New(Config{Dir: t.TempDir()})
		if err != nil {
			t.Fatalf("Failed to create file store: %v", err)
		}
		return store
	})
}

func Benchmark(b *testing.B) {
	kvtesting.RunStoreBenchmarks(b, "FileStore", func(t testing.TB) kv.IStore {
		store, err := New(Config{Dir: t.TempDir()})
		if err != nil {
			t.Fatalf("Failed to create file store: %v", err)
		}
		return store
	})
}
