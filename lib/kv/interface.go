package kv

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// StoreFactory is a function type that creates a new store instance.
// This is used to abstract the creation of a store from the code using it
// (e.g. the shared test suite or the CLI).
type StoreFactory func() (IStore, error)

// IStore is the generic interface for interacting with a key–value store.
// All operations return a *Error (via the error interface, nil on success);
// read operations additionally return the requested data.
//
// Implementations must serialize all operations against one store instance
// so that no two operation bodies ever run concurrently. Operations against
// different store instances are fully independent.
type IStore interface {
	// Put inserts or updates a key–value pair, fully replacing any prior value.
	Put(key string, value []byte) (err error)
	// Get returns the value last written for a key.
	// A missing key is reported as an Error with code ErrCKeyNotFound.
	Get(key string) (value []byte, err error)
	// Remove deletes a key–value pair. Removing a missing key is an error
	// (ErrCKeyNotFound), distinct from Clear which ignores absent entries.
	Remove(key string) (err error)
	// Contains reports whether a key exists in the store.
	// A missing key is not an error, it simply yields false.
	Contains(key string) (found bool, err error)
	// Clear removes every entry from the store. The store stays usable.
	Clear() (err error)
	// Close shuts the store down and releases its execution resources.
	// Close is idempotent; every operation after the first Close fails
	// with ErrCClosedStore.
	Close() (err error)
	// IsClosed is a non-blocking observer of the closed flag.
	IsClosed() (closed bool)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps an error code (of type ErrCode),
// a message and, for ErrCIO, the underlying cause.
type Error struct {
	Code  ErrCode // The error code
	Msg   string  // The error message
	Cause error   // The underlying error (only set for ErrCIO)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("KVStoreError (code %s): %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("KVStoreError (code %s): %s", e.Code, e.Msg)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// WrapIOError creates a new Error with code ErrCIO wrapping the given cause.
func WrapIOError(msg string, cause error) *Error {
	return &Error{
		Code:  ErrCIO,
		Msg:   msg,
		Cause: cause,
	}
}

// CodeOf extracts the ErrCode from an error returned by a store operation.
// The boolean return value indicates whether err is a store *Error.
func CodeOf(err error) (ErrCode, bool) {
	if e, ok := err.(*Error); ok {
		return e.Code, true
	}
	return 0, false
}

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

// ErrCode enumerates the closed set of failure kinds a store operation can
// report. Callers are expected to handle this set exhaustively; no
// catch-all code exists.
type ErrCode uint64

const (
	ErrCKeyNotFound ErrCode = iota // 0: Requested key has no entry.
	ErrCIO                         // 1: Underlying filesystem failure.
	ErrCInvalidKey                 // 2: Key failed structural validation.
	ErrCClosedStore                // 3: Operation attempted after Close.
)

func (c ErrCode) String() string {
	switch c {
	case ErrCKeyNotFound:
		return "KeyNotFound"
	case ErrCIO:
		return "IO"
	case ErrCInvalidKey:
		return "InvalidKey"
	case ErrCClosedStore:
		return "ClosedStore"
	default:
		return "Unknown"
	}
}
