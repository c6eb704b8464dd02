// Package kv provides a unified interface for single-node key-value store
// implementations together with a structured error model.
//
// The package focuses on:
//   - A unified interface (IStore) for key-value operations across different backends
//   - Pluggable storage backend architecture through the StoreFactory pattern
//   - A closed, exhaustively matchable set of error codes
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining operations for interacting
//     with a key-value store. All implementations share this common interface,
//     allowing applications to switch between different storage backends without
//     code changes. The interface methods return custom Error values that carry
//     a typed error code alongside a descriptive message.
//
//   - Error System: A structured error reporting mechanism using a closed set of
//     typed error codes (ErrCKeyNotFound, ErrCIO, ErrCInvalidKey,
//     ErrCClosedStore). There is deliberately no catch-all code: callers are
//     expected to handle every member of the set. IO errors wrap their
//     underlying cause and support errors.Is/errors.As via Unwrap.
//
//   - StoreFactory: A function type that abstracts the creation of store
//     instances, used by the shared conformance suite and the CLI.
//
// Implementations:
//
//	The repository includes two implementations of the IStore interface:
//
//	- File Store (engines/fstore): A file-backed implementation where every key
//	  maps to exactly one file on disk, named by the SHA-256 digest of the key.
//	  The storage directory is the sole source of truth; the engine holds no
//	  cache. All operations are funneled through a serial execution context.
//	  Available in the "github.com/pablin202/kvstore/lib/kv/engines/fstore" package.
//
//	- Memory Store (engines/memstore): An ephemeral in-memory implementation
//	  backed by a concurrent map. Data does not survive process restarts.
//	  Suitable for tests and runtime caching.
//	  Available in the "github.com/pablin202/kvstore/lib/kv/engines/memstore" package.
//
// Lifecycle:
//
//	Every store is created open and transitions to closed exactly once via
//	Close(). The transition is one-way: a closed store rejects every further
//	operation with ErrCClosedStore, and additional Close() calls are no-ops.
package kv
