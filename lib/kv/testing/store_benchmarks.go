package testing

import (
	"fmt"
	"testing"

	"github.com/pablin202/kvstore/lib/kv"
)

// RunStoreBenchmarks runs a benchmark suite for a kv.IStore implementation.
func RunStoreBenchmarks(b *testing.B, name string, factory Factory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Put", func(b *testing.B) {
			benchmarkPut(b, factory(b))
		})

		b.Run("PutExisting", func(b *testing.B) {
			benchmarkPutExisting(b, factory(b))
		})

		b.Run("PutLargeValue", func(b *testing.B) {
			benchmarkPutLargeValue(b, factory(b))
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory(b))
		})

		b.Run("Contains", func(b *testing.B) {
			benchmarkContains(b, factory(b))
		})

		b.Run("MixedUsage", func(b *testing.B) {
			benchmarkMixedUsage(b, factory(b))
		})
	})
}

func benchmarkPut(b *testing.B, store kv.IStore) {
	defer store.Close()

	value := []byte("benchmark-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Put(fmt.Sprintf("bench-key-%d", i), value)
	}
}

func benchmarkPutExisting(b *testing.B, store kv.IStore) {
	defer store.Close()

	value := []byte("benchmark-value")
	_ = store.Put("bench-key", value)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Put("bench-key", value)
	}
}

func benchmarkPutLargeValue(b *testing.B, store kv.IStore) {
	defer store.Close()

	value := make([]byte, 1<<20) // 1 MB

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Put(fmt.Sprintf("bench-large-%d", i%16), value)
	}
}

func benchmarkGet(b *testing.B, store kv.IStore) {
	defer store.Close()

	_ = store.Put("bench-key", []byte("benchmark-value"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get("bench-key")
	}
}

func benchmarkContains(b *testing.B, store kv.IStore) {
	defer store.Close()

	_ = store.Put("bench-key", []byte("benchmark-value"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Contains("bench-key")
	}
}

func benchmarkMixedUsage(b *testing.B, store kv.IStore) {
	defer store.Close()

	value := []byte("benchmark-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("bench-mixed-%d", i%64)
		switch i % 4 {
		case 0:
			_ = store.Put(key, value)
		case 1:
			_, _ = store.Get(key)
		case 2:
			_, _ = store.Contains(key)
		case 3:
			_ = store.Remove(key)
		}
	}
}
