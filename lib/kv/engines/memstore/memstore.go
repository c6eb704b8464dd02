package memstore

import (
	"fmt"
	"sync/atomic"

	"github.com/pablin202/kvstore/lib/kv"
	"github.com/pablin202/kvstore/lib/kv/keys"
	"github.com/puzpuzpuz/xsync/v3"
)

const engineName = "memstore"

// storeImpl implements kv.IStore on a concurrent in-memory map. It shares
// the key validation rules and the error taxonomy with the file store but
// needs no serial executor: the underlying map provides per-entry atomicity
// and the engine holds no other mutable state.
type storeImpl struct {
	data   *xsync.MapOf[string, []byte]
	closed atomic.Bool
}

// New creates a new empty in-memory store.
func New() kv.IStore {
	return &storeImpl{
		data: xsync.NewMapOf[string, []byte](),
	}
}

// check runs the shared preconditions: closed flag first, then the key.
func (s *storeImpl) check(op, key string) error {
	if s.closed.Load() {
		return kv.NewError(kv.ErrCClosedStore, "store is closed")
	}
	kv.OpCounter(engineName, op).Inc()
	if reason := keys.Validate(key); reason != "" {
		return kv.NewError(kv.ErrCInvalidKey, reason)
	}
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see lib/kv/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Put(key string, value []byte) error {
	if err := s.check("put", key); err != nil {
		return err
	}

	// Copy to decouple the stored value from the caller's buffer.
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	s.data.Store(key, valueCopy)
	return nil
}

func (s *storeImpl) Get(key string) ([]byte, error) {
	if err := s.check("get", key); err != nil {
		return nil, err
	}

	value, ok := s.data.Load(key)
	if !ok {
		return nil, kv.NewError(kv.ErrCKeyNotFound, fmt.Sprintf("no entry for key %q", key))
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, nil
}

func (s *storeImpl) Remove(key string) error {
	if err := s.check("remove", key); err != nil {
		return err
	}

	if _, ok := s.data.LoadAndDelete(key); !ok {
		return kv.NewError(kv.ErrCKeyNotFound, fmt.Sprintf("no entry for key %q", key))
	}
	return nil
}

func (s *storeImpl) Contains(key string) (bool, error) {
	if err := s.check("contains", key); err != nil {
		return false, err
	}

	_, ok := s.data.Load(key)
	return ok, nil
}

func (s *storeImpl) Clear() error {
	if s.closed.Load() {
		return kv.NewError(kv.ErrCClosedStore, "store is closed")
	}
	kv.OpCounter(engineName, "clear").Inc()

	s.data.Clear()
	return nil
}

func (s *storeImpl) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		// Drop all entries so the data becomes unreachable immediately.
		s.data.Clear()
	}
	return nil
}

func (s *storeImpl) IsClosed() bool {
	return s.closed.Load()
}
