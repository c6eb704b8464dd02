// Package testing provides standardised tests and benchmarks for store
// implementations that satisfy the kv.IStore interface.
//
// The package contains:
//   - testing: A conformance suite validating the IStore contract, including
//     the round-trip law, the error taxonomy, key validation, instance
//     isolation and the open/closed lifecycle
//   - benchmark: Performance tests for measuring throughput of common store
//     operations
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func(t testing.TB) kv.IStore {
//		store, err := fstore.New(fstore.Config{Dir: t.TempDir()})
//		if err != nil {
//			t.Fatal(err)
//		}
//		return store
//	}
//
//	// Running the standard test suite
//	kvtesting.RunStoreTests(t, "FileStore", factory)
//
//	// Running performance benchmarks
//	kvtesting.RunStoreBenchmarks(b, "FileStore", factory)
package testing
