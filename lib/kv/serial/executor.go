package serial

import (
	"sync"
	"sync/atomic"
)

// Executor runs submitted tasks strictly one at a time, in submission
// order, on a single worker goroutine. It is the sole concurrency-safety
// mechanism of the store engines: because only one task body ever executes
// at a time, the engines take no locks of their own.
//
// Implementation uses a mutex-guarded FIFO with a condition variable for
// efficient waiting. Submission order is the order in which Submit calls
// acquire the queue mutex; under concurrent submitters this is the order
// in which their operations are linearized.
type Executor struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed atomic.Bool // atomic flag, also guarded by mu for writes
	done   chan struct{}
}

// NewExecutor creates a new Executor and starts its worker goroutine.
func NewExecutor() *Executor {
	e := &Executor{
		done: make(chan struct{}),
	}
	e.cond = sync.NewCond(&e.mu)

	go e.work()

	return e
}

// Submit enqueues a task for execution.
// Returns true if the task was accepted and will eventually run, or false
// if the executor is already closed (the task will never run).
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (e *Executor) Submit(task func()) bool {
	if task == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed.Load() {
		return false
	}

	e.queue = append(e.queue, task)
	e.cond.Signal()
	return true
}

// work is the single consumer loop. It drains the queue in FIFO order and
// exits once the executor is closed and no tasks remain.
func (e *Executor) work() {
	defer close(e.done)

	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed.Load() {
			e.cond.Wait()
		}

		if len(e.queue) == 0 {
			// closed and drained
			e.mu.Unlock()
			return
		}

		task := e.queue[0]
		e.queue[0] = nil // help the go gc
		e.queue = e.queue[1:]
		e.mu.Unlock()

		task()
	}
}

// Close shuts the executor down. Tasks accepted before Close still run to
// completion; Close blocks until the worker has drained them and exited.
// Close is idempotent: every call after the first is a no-op that also
// waits for the worker to finish.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (e *Executor) Close() {
	e.mu.Lock()
	if !e.closed.Load() {
		e.closed.Store(true)
		e.cond.Signal()
	}
	e.mu.Unlock()

	<-e.done
}

// IsClosed returns true if the executor no longer accepts tasks.
//
// Thread-safety: This method is thread-safe and non-blocking.
func (e *Executor) IsClosed() bool {
	return e.closed.Load()
}

// Len returns the number of tasks currently waiting for execution.
// This is intended for debugging and metrics only.
func (e *Executor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}
