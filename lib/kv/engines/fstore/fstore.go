package fstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/pablin202/kvstore/lib/kv"
	"github.com/pablin202/kvstore/lib/kv/keys"
	"github.com/pablin202/kvstore/lib/kv/serial"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	engineName = "fstore"

	dirPerm  = 0o700 // store directory permissions
	filePerm = 0o600 // entry file permissions
)

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// Config configures a file store instance.
type Config struct {
	// Dir is the target storage directory. It is created (including parent
	// segments) if it does not exist. If the path exists but is not a
	// directory, store creation fails.
	Dir string
}

// --------------------------------------------------------------------------
// Core file store structure
// --------------------------------------------------------------------------

// storeImpl implements kv.IStore on top of a single directory: every key
// maps to exactly one regular file named by the SHA-256 digest of the key,
// and the file content is exactly the value bytes last written. The
// directory is the sole source of truth; no in-memory cache is held.
type storeImpl struct {
	dir    string
	exec   *serial.Executor
	closed atomic.Bool // monotonic: open -> closed, never reversed
}

// New creates a new file store over the configured directory.
//
// The directory is ensured to exist at construction time. An invalid
// configuration (empty path, or an existing path that is not a directory)
// is a construction failure signaled by a plain error, since no store
// instance exists yet to report through the kv error model.
//
// Thread-safety: the returned store serializes all its operations through
// one internal executor; methods can be called from any goroutine.
func New(config Config) (kv.IStore, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("fstore: storage directory must not be empty")
	}

	if info, err := os.Stat(config.Dir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("fstore: path %q exists but is not a directory", config.Dir)
	}

	if err := os.MkdirAll(config.Dir, dirPerm); err != nil {
		return nil, fmt.Errorf("fstore: failed to create storage directory %q: %w", config.Dir, err)
	}

	return &storeImpl{
		dir:  config.Dir,
		exec: serial.NewExecutor(),
	}, nil
}

// pathFor returns the entry file path for a key.
func (s *storeImpl) pathFor(key string) string {
	return filepath.Join(s.dir, keys.FileName(key))
}

// run funnels one operation body through the serial executor and blocks the
// caller until it has fully completed. The closed flag is checked first;
// a store that closes between the check and the submission is caught by the
// executor rejecting the task.
func (s *storeImpl) run(op string, body func() error) error {
	if s.closed.Load() {
		return kv.NewError(kv.ErrCClosedStore, "store is closed")
	}

	kv.OpCounter(engineName, op).Inc()

	var err error
	done := make(chan struct{})

	if !s.exec.Submit(func() {
		defer close(done)
		err = body()
	}) {
		return kv.NewError(kv.ErrCClosedStore, "store is closed")
	}

	<-done
	return err
}

// validated returns the per-key precondition error, or nil.
func validated(key string) error {
	if reason := keys.Validate(key); reason != "" {
		return kv.NewError(kv.ErrCInvalidKey, reason)
	}
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see lib/kv/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Put(key string, value []byte) error {
	return s.run("put", func() error {
		if err := validated(key); err != nil {
			return err
		}
		if err := os.WriteFile(s.pathFor(key), value, filePerm); err != nil {
			return kv.WrapIOError(fmt.Sprintf("failed to write entry for key %q", key), err)
		}
		return nil
	})
}

func (s *storeImpl) Get(key string) ([]byte, error) {
	var value []byte
	err := s.run("get", func() error {
		if err := validated(key); err != nil {
			return err
		}
		data, err := os.ReadFile(s.pathFor(key))
		if err != nil {
			if os.IsNotExist(err) {
				return kv.NewError(kv.ErrCKeyNotFound, fmt.Sprintf("no entry for key %q", key))
			}
			return kv.WrapIOError(fmt.Sprintf("failed to read entry for key %q", key), err)
		}
		value = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *storeImpl) Remove(key string) error {
	return s.run("remove", func() error {
		if err := validated(key); err != nil {
			return err
		}
		if err := os.Remove(s.pathFor(key)); err != nil {
			if os.IsNotExist(err) {
				return kv.NewError(kv.ErrCKeyNotFound, fmt.Sprintf("no entry for key %q", key))
			}
			return kv.WrapIOError(fmt.Sprintf("failed to remove entry for key %q", key), err)
		}
		return nil
	})
}

func (s *storeImpl) Contains(key string) (bool, error) {
	var found bool
	err := s.run("contains", func() error {
		if err := validated(key); err != nil {
			return err
		}
		_, err := os.Stat(s.pathFor(key))
		if err != nil {
			if os.IsNotExist(err) {
				found = false
				return nil
			}
			return kv.WrapIOError(fmt.Sprintf("failed to stat entry for key %q", key), err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (s *storeImpl) Clear() error {
	return s.run("clear", func() error {
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			return kv.WrapIOError("failed to list storage directory", err)
		}

		// Best effort: attempt every entry, ignore individual failures.
		// Only a failing directory listing is reported.
		for _, entry := range entries {
			_ = os.Remove(filepath.Join(s.dir, entry.Name()))
		}
		return nil
	})
}

func (s *storeImpl) Close() error {
	// The first Close tears the executor down, later calls are no-ops.
	if s.closed.CompareAndSwap(false, true) {
		s.exec.Close()
	}
	return nil
}

func (s *storeImpl) IsClosed() bool {
	return s.closed.Load()
}
