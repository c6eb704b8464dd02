package testing

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pablin202/kvstore/lib/kv"
)

// Factory is a function that creates a fresh, empty store instance for one
// test. Implementations backed by the filesystem should create the store
// over a new temporary directory (e.g. t.TempDir()).
type Factory func(t testing.TB) kv.IStore

// RunStoreTests runs the conformance test suite for a kv.IStore
// implementation. Every engine in this repository is expected to pass it.
func RunStoreTests(t *testing.T, name string, factory Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Put&Get", func(t *testing.T) {
			testPutGet(t, factory(t))
		})

		t.Run("ZeroLengthValue", func(t *testing.T) {
			testZeroLengthValue(t, factory(t))
		})

		t.Run("MissingKey", func(t *testing.T) {
			testMissingKey(t, factory(t))
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory(t))
		})

		t.Run("Contains", func(t *testing.T) {
			testContains(t, factory(t))
		})

		t.Run("Clear", func(t *testing.T) {
			testClear(t, factory(t))
		})

		t.Run("InvalidKeys", func(t *testing.T) {
			testInvalidKeys(t, factory(t))
		})

		t.Run("HostileKeys", func(t *testing.T) {
			testHostileKeys(t, factory(t))
		})

		t.Run("CloseLifecycle", func(t *testing.T) {
			testCloseLifecycle(t, factory(t))
		})

		t.Run("Isolation", func(t *testing.T) {
			testIsolation(t, factory(t), factory(t))
		})

		t.Run("ManyKeys", func(t *testing.T) {
			testManyKeys(t, factory(t))
		})

		t.Run("ConcurrentCallers", func(t *testing.T) {
			testConcurrentCallers(t, factory(t))
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory(t))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// requireCode fails the test unless err carries the expected store error code.
func requireCode(t testing.TB, err error, want kv.ErrCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", want)
	}
	code, ok := kv.CodeOf(err)
	if !ok {
		t.Fatalf("Expected a *kv.Error, got %T: %v", err, err)
	}
	if code != want {
		t.Fatalf("Expected error code %s, got %s (%v)", want, code, err)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testPutGet(t *testing.T, store kv.IStore) {
	defer store.Close()

	testKey := "test-key"
	testValue1 := []byte("test-value1")
	testValue2 := []byte("test-value2")

	if err := store.Put(testKey, testValue1); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	result, err := store.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed after Put: %v", err)
	}
	if !bytes.Equal(result, testValue1) {
		t.Errorf("Expected value %s, got %s", testValue1, result)
	}

	// Repeated puts are last-write-wins on final state.
	if err := store.Put(testKey, testValue2); err != nil {
		t.Fatalf("Overwriting Put failed: %v", err)
	}

	result, err = store.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed after overwrite: %v", err)
	}
	if !bytes.Equal(result, testValue2) {
		t.Errorf("Expected updated value %s, got %s", testValue2, result)
	}
}

func testZeroLengthValue(t *testing.T, store kv.IStore) {
	defer store.Close()

	testKey := "empty-value-key"

	if err := store.Put(testKey, []byte{}); err != nil {
		t.Fatalf("Put with empty value failed: %v", err)
	}

	result, err := store.Get(testKey)
	if err != nil {
		t.Fatalf("Get of empty value failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected zero-length value, got %d bytes", len(result))
	}

	found, err := store.Contains(testKey)
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !found {
		t.Error("Key with empty value should be reported as existing")
	}
}

func testMissingKey(t *testing.T, store kv.IStore) {
	defer store.Close()

	_, err := store.Get("never-written")
	requireCode(t, err, kv.ErrCKeyNotFound)

	found, err := store.Contains("never-written")
	if err != nil {
		t.Fatalf("Contains must not error for a missing key: %v", err)
	}
	if found {
		t.Error("Contains returned true for a key that was never put")
	}
}

func testRemove(t *testing.T, store kv.IStore) {
	defer store.Close()

	testKey := "remove-key"

	if err := store.Put(testKey, []byte("some-value")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	found, _ := store.Contains(testKey)
	if !found {
		t.Fatal("Key should exist before Remove")
	}

	if err := store.Remove(testKey); err != nil {
		t.Fatalf("Remove of existing key failed: %v", err)
	}

	found, err := store.Contains(testKey)
	if err != nil {
		t.Fatalf("Contains failed after Remove: %v", err)
	}
	if found {
		t.Error("Key should not exist after Remove")
	}

	// Removing an absent key is an error, distinct from Clear.
	requireCode(t, store.Remove(testKey), kv.ErrCKeyNotFound)

	_, err = store.Get(testKey)
	requireCode(t, err, kv.ErrCKeyNotFound)
}

func testContains(t *testing.T, store kv.IStore) {
	defer store.Close()

	testKey := "contains-key"

	found, err := store.Contains(testKey)
	if err != nil || found {
		t.Errorf("Expected (false, nil) before Put, got (%t, %v)", found, err)
	}

	if err := store.Put(testKey, []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	found, err = store.Contains(testKey)
	if err != nil || !found {
		t.Errorf("Expected (true, nil) after Put, got (%t, %v)", found, err)
	}
}

func testClear(t *testing.T, store kv.IStore) {
	defer store.Close()

	testKeys := []string{"clear-a", "clear-b", "clear-c"}
	for _, key := range testKeys {
		if err := store.Put(key, []byte("value-"+key)); err != nil {
			t.Fatalf("Put(%s) failed: %v", key, err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, key := range testKeys {
		found, err := store.Contains(key)
		if err != nil {
			t.Fatalf("Contains(%s) failed after Clear: %v", key, err)
		}
		if found {
			t.Errorf("Key %s should not exist after Clear", key)
		}
	}

	// The store stays usable after Clear.
	if err := store.Put("after-clear", []byte("still-works")); err != nil {
		t.Fatalf("Put after Clear failed: %v", err)
	}
	result, err := store.Get("after-clear")
	if err != nil || !bytes.Equal(result, []byte("still-works")) {
		t.Errorf("Store unusable after Clear: value=%s err=%v", result, err)
	}

	// Clearing an already (mostly) empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Second Clear failed: %v", err)
	}
}

func testInvalidKeys(t *testing.T, store kv.IStore) {
	defer store.Close()

	invalidKeys := []string{
		"",                       // blank
		"   ",                    // whitespace-only
		strings.Repeat("x", 300), // too long
		"../outside",             // traversal
		"nested/../../traversal", // traversal
	}

	for _, key := range invalidKeys {
		requireCode(t, store.Put(key, []byte("v")), kv.ErrCInvalidKey)

		_, err := store.Get(key)
		requireCode(t, err, kv.ErrCInvalidKey)

		requireCode(t, store.Remove(key), kv.ErrCInvalidKey)

		_, err = store.Contains(key)
		requireCode(t, err, kv.ErrCInvalidKey)
	}
}

func testHostileKeys(t *testing.T, store kv.IStore) {
	defer store.Close()

	// Structurally valid but filesystem-hostile keys must round-trip.
	hostileKeys := []string{
		"path/with/slashes",
		"back\\slashes",
		"key with spaces",
		"null\x00byte",
		"ümläut-ключ-鍵",
		".hidden",
	}

	for i, key := range hostileKeys {
		value := []byte(fmt.Sprintf("hostile-value-%d", i))
		if err := store.Put(key, value); err != nil {
			t.Fatalf("Put(%q) failed: %v", key, err)
		}

		result, err := store.Get(key)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", key, err)
		}
		if !bytes.Equal(result, value) {
			t.Errorf("Round trip for key %q: expected %s, got %s", key, value, result)
		}
	}

	// Distinct hostile keys must not collide with each other.
	for i, key := range hostileKeys {
		expected := []byte(fmt.Sprintf("hostile-value-%d", i))
		result, err := store.Get(key)
		if err != nil {
			t.Fatalf("Get(%q) failed on second pass: %v", key, err)
		}
		if !bytes.Equal(result, expected) {
			t.Errorf("Key %q was clobbered: expected %s, got %s", key, expected, result)
		}
	}
}

func testCloseLifecycle(t *testing.T, store kv.IStore) {
	if store.IsClosed() {
		t.Fatal("Freshly created store reports closed")
	}

	if err := store.Put("pre-close", []byte("v")); err != nil {
		t.Fatalf("Put before Close failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !store.IsClosed() {
		t.Error("IsClosed should report true after Close")
	}

	// Every operation is rejected after Close.
	requireCode(t, store.Put("k", []byte("v")), kv.ErrCClosedStore)

	_, err := store.Get("pre-close")
	requireCode(t, err, kv.ErrCClosedStore)

	requireCode(t, store.Remove("pre-close"), kv.ErrCClosedStore)

	_, err = store.Contains("pre-close")
	requireCode(t, err, kv.ErrCClosedStore)

	requireCode(t, store.Clear(), kv.ErrCClosedStore)

	// Close is idempotent.
	if err := store.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
	if !store.IsClosed() {
		t.Error("Store reopened after second Close")
	}
}

func testIsolation(t *testing.T, store1, store2 kv.IStore) {
	defer store1.Close()
	defer store2.Close()

	if err := store1.Put("shared-key", []byte("from-store1")); err != nil {
		t.Fatalf("Put into store1 failed: %v", err)
	}

	found, err := store2.Contains("shared-key")
	if err != nil {
		t.Fatalf("Contains on store2 failed: %v", err)
	}
	if found {
		t.Error("Independent store instances must not observe each other's keys")
	}

	if err := store2.Put("shared-key", []byte("from-store2")); err != nil {
		t.Fatalf("Put into store2 failed: %v", err)
	}

	result, err := store1.Get("shared-key")
	if err != nil {
		t.Fatalf("Get from store1 failed: %v", err)
	}
	if !bytes.Equal(result, []byte("from-store1")) {
		t.Errorf("Store1's value was overwritten by store2: got %s", result)
	}
}

func testManyKeys(t *testing.T, store kv.IStore) {
	defer store.Close()

	const numKeys = 1000

	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("bulk-key-%d", i)
		if err := store.Put(key, []byte(fmt.Sprintf("bulk-value-%d", i))); err != nil {
			t.Fatalf("Put(%s) failed: %v", key, err)
		}
	}

	for i := 0; i < numKeys; i += 100 {
		key := fmt.Sprintf("bulk-key-%d", i)
		found, err := store.Contains(key)
		if err != nil || !found {
			t.Fatalf("Expected key %s to exist, got (%t, %v)", key, found, err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("bulk-key-%d", i)
		found, err := store.Contains(key)
		if err != nil {
			t.Fatalf("Contains(%s) failed after Clear: %v", key, err)
		}
		if found {
			t.Fatalf("Key %s still exists after Clear", key)
		}
	}
}

func testConcurrentCallers(t *testing.T, store kv.IStore) {
	defer store.Close()

	const numWriters = 8
	const keysPerWriter = 50

	var wg sync.WaitGroup
	wg.Add(numWriters)

	for w := 0; w < numWriters; w++ {
		go func(writerID int) {
			defer wg.Done()
			for i := 0; i < keysPerWriter; i++ {
				key := fmt.Sprintf("writer-%d-key-%d", writerID, i)
				if err := store.Put(key, []byte(key)); err != nil {
					t.Errorf("Concurrent Put(%s) failed: %v", key, err)
					return
				}
				if _, err := store.Get(key); err != nil {
					t.Errorf("Concurrent Get(%s) failed: %v", key, err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	for w := 0; w < numWriters; w++ {
		for i := 0; i < keysPerWriter; i++ {
			key := fmt.Sprintf("writer-%d-key-%d", w, i)
			result, err := store.Get(key)
			if err != nil {
				t.Fatalf("Get(%s) failed after concurrent writes: %v", key, err)
			}
			if !bytes.Equal(result, []byte(key)) {
				t.Errorf("Key %s holds %s, expected %s", key, result, key)
			}
		}
	}
}

func testRealisticUsage(t *testing.T, store kv.IStore) {
	defer store.Close()

	// Concrete session-token scenario.
	if err := store.Put("auth_token", []byte("abc123")); err != nil {
		t.Fatalf("Put(auth_token) failed: %v", err)
	}

	result, err := store.Get("auth_token")
	if err != nil {
		t.Fatalf("Get(auth_token) failed: %v", err)
	}
	if !bytes.Equal(result, []byte("abc123")) {
		t.Errorf("Expected abc123, got %s", result)
	}

	if err := store.Remove("auth_token"); err != nil {
		t.Fatalf("Remove(auth_token) failed: %v", err)
	}

	_, err = store.Get("auth_token")
	requireCode(t, err, kv.ErrCKeyNotFound)
}
