package kv

import (
	"bytes"
	"testing"

	"github.com/pablin202/kvstore/lib/kv"
	"github.com/pablin202/kvstore/lib/kv/engines/memstore"
	"github.com/spf13/cobra"
)

// TestPerfCleanupKeepsUserData verifies that the perf command removes only
// its own generated keys and leaves pre-existing entries untouched.
func TestPerfCleanupKeepsUserData(t *testing.T) {
	store = memstore.New()
	defer store.Close()

	if err := store.Put("user-key", []byte("user-value")); err != nil {
		t.Fatalf("Put of user data failed: %v", err)
	}

	perfOps = 50
	perfKeySpread = 10
	perfValueSizeKB = 1
	perfSkip = nil

	if err := runPerf(nil, nil); err != nil {
		t.Fatalf("runPerf failed: %v", err)
	}

	// User data survives the benchmark.
	value, err := store.Get("user-key")
	if err != nil {
		t.Fatalf("User key gone after perf run: %v", err)
	}
	if !bytes.Equal(value, []byte("user-value")) {
		t.Errorf("User value changed after perf run: %s", value)
	}

	// No benchmark keys remain.
	for _, bench := range []string{"put", "get", "contains", "remove"} {
		for i := 0; i < perfKeySpread; i++ {
			key := perfKey(bench, i)
			found, err := store.Contains(key)
			if err != nil {
				t.Fatalf("Contains(%s) failed: %v", key, err)
			}
			if found {
				t.Errorf("Benchmark key %s left behind after cleanup", key)
			}
		}
	}
}

// TestStoreClosedOnFailedCommand verifies that the store is released even
// when a subcommand fails, e.g. reading a missing key.
func TestStoreClosedOnFailedCommand(t *testing.T) {
	root := &cobra.Command{Use: "kvstore-test", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(KeyValueCommands)
	root.SetArgs([]string{"kv", "get", "missing-key", "--engine", "memstore"})

	err := root.Execute()
	if err == nil {
		t.Fatal("Expected get of a missing key to fail")
	}
	if code, ok := kv.CodeOf(err); !ok || code != kv.ErrCKeyNotFound {
		t.Fatalf("Expected KeyNotFound, got %v", err)
	}

	if store == nil {
		t.Fatal("Store was never created")
	}
	if !store.IsClosed() {
		t.Error("Store left open after a failed command")
	}
}

// TestStoreClosedOnSuccessfulCommand verifies the regular close path.
func TestStoreClosedOnSuccessfulCommand(t *testing.T) {
	root := &cobra.Command{Use: "kvstore-test", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(KeyValueCommands)
	root.SetArgs([]string{"kv", "put", "some-key", "some-value", "--engine", "memstore"})

	if err := root.Execute(); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if store == nil {
		t.Fatal("Store was never created")
	}
	if !store.IsClosed() {
		t.Error("Store left open after a successful command")
	}
}
