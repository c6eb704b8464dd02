// Package memstore implements an ephemeral, in-memory key-value store based
// on the kv.IStore interface. Data is held in a concurrent map and is not
// persisted between process restarts.
//
// The engine shares the key validation rules, the error taxonomy and the
// open/closed lifecycle with the file-backed engine, so the two are
// interchangeable behind kv.IStore. Values are copied on Put and Get, so
// callers can freely reuse or modify their buffers.
//
// Suitable Use Cases:
//   - Testing and development environments
//   - Runtime caching and session storage within a single process
//   - Ephemeral data that doesn't need to survive process restarts
package memstore
