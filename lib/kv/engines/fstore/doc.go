// Package fstore implements a single-node, file-backed key-value store based
// on the kv.IStore interface. Every key maps to exactly one regular file
// inside one storage directory; the file is named by the fixed-width
// lowercase hex SHA-256 digest of the key and its content is exactly the
// value bytes last written, with no header, length prefix or checksum.
//
// Key Features:
//   - File-per-key persistence with hash-derived, collision-resistant names
//   - Strict serialization of all operations through one execution context
//   - Structured key validation before any filesystem access
//   - Idempotent open/closed lifecycle with monotonic closed flag
//
// Implementation Details:
//
//   - Source of Truth: The storage directory is the only state the engine
//     has. No index, manifest or in-memory cache is maintained; the directory
//     listing is the key set. Because file names are one-way hashes, original
//     keys cannot be recovered from disk and key enumeration is not a
//     supported capability.
//
//   - Serialization: All five operations are funneled through a single
//     serial.Executor owned exclusively by the store instance. Operations on
//     the same store never run concurrently with each other; operations on
//     different store instances (different directories) are fully
//     independent. Callers block until their operation has fully completed.
//
//   - Error Model: Filesystem outcomes are translated into the closed
//     kv.ErrCode set. The engine never panics for expected failures and
//     performs no internal retry. Data corruption below the file level is
//     not detected; the engine trusts the filesystem and returns whatever
//     bytes are present.
//
//   - Clear Semantics: Clear attempts to delete every entry in the directory
//     and deliberately ignores individual deletion failures; only a failure
//     to list the directory itself is reported.
//
// The store directory is not protected against external, out-of-process
// mutation. The engine assumes it is the sole writer to its directory during
// its open lifetime; violating this assumption is undefined behavior.
//
// Usage Example:
//
//	store, err := fstore.New(fstore.Config{Dir: "/var/lib/myapp/kv"})
//	if err != nil {
//		// construction failure: invalid directory configuration
//	}
//	defer store.Close()
//
//	err = store.Put("auth_token", []byte("abc123"))
//	value, err := store.Get("auth_token")
//
// For ephemeral data that does not need to survive process restarts,
// consider the memstore package instead, which provides an in-memory
// implementation of the same interface.
package fstore
