package serial

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestBasicExecution tests that submitted tasks run exactly once, in order.
func TestBasicExecution(t *testing.T) {
	e := NewExecutor()

	var mu sync.Mutex
	var order []int

	for i := 0; i < 10; i++ {
		i := i
		if !e.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}) {
			t.Fatalf("Failed to submit task %d", i)
		}
	}

	e.Close()

	if len(order) != 10 {
		t.Fatalf("Expected 10 executed tasks, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("Expected task %d at position %d, got %d", i, i, got)
		}
	}
}

// TestNoConcurrentExecution verifies that no two task bodies overlap.
func TestNoConcurrentExecution(t *testing.T) {
	e := NewExecutor()

	var running atomic.Int32
	var maxSeen atomic.Int32

	var wg sync.WaitGroup
	const numProducers = 8
	const tasksPerProducer = 100

	wg.Add(numProducers)
	for p := 0; p < numProducers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < tasksPerProducer; i++ {
				e.Submit(func() {
					cur := running.Add(1)
					if cur > maxSeen.Load() {
						maxSeen.Store(cur)
					}
					runtime.Gosched()
					running.Add(-1)
				})
			}
		}()
	}

	wg.Wait()
	e.Close()

	if maxSeen.Load() != 1 {
		t.Errorf("Expected at most 1 task running at a time, saw %d", maxSeen.Load())
	}
}

// TestCloseDrains verifies that tasks accepted before Close still run.
func TestCloseDrains(t *testing.T) {
	e := NewExecutor()

	var executed atomic.Int32
	block := make(chan struct{})

	// First task blocks the worker so the rest stay queued.
	e.Submit(func() {
		<-block
		executed.Add(1)
	})
	for i := 0; i < 5; i++ {
		if !e.Submit(func() { executed.Add(1) }) {
			t.Fatalf("Failed to submit task %d", i)
		}
	}

	close(block)
	e.Close()

	if executed.Load() != 6 {
		t.Errorf("Expected 6 executed tasks after Close, got %d", executed.Load())
	}
}

// TestSubmitAfterClose verifies rejected submissions.
func TestSubmitAfterClose(t *testing.T) {
	e := NewExecutor()
	e.Close()

	if e.Submit(func() {}) {
		t.Error("Should not be able to submit after executor is closed")
	}
	if !e.IsClosed() {
		t.Error("IsClosed should report true after Close")
	}
}

// TestCloseIdempotent verifies that Close can be called multiple times.
func TestCloseIdempotent(t *testing.T) {
	e := NewExecutor()

	e.Submit(func() { time.Sleep(time.Millisecond) })

	e.Close()
	e.Close()
	e.Close()

	// Concurrent closes must not panic or deadlock either.
	var wg sync.WaitGroup
	e2 := NewExecutor()
	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			e2.Close()
		}()
	}
	wg.Wait()
}

// TestNilTask verifies that nil tasks are rejected.
func TestNilTask(t *testing.T) {
	e := NewExecutor()
	defer e.Close()

	if e.Submit(nil) {
		t.Error("Submitting nil should be rejected")
	}
}

// BenchmarkSubmit benchmarks submission with a trivial task.
func BenchmarkSubmit(b *testing.B) {
	e := NewExecutor()
	defer e.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Submit(func() {})
	}
}

// BenchmarkSubmitAndWait benchmarks a full round trip per task.
func BenchmarkSubmitAndWait(b *testing.B) {
	e := NewExecutor()
	defer e.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		done := make(chan struct{})
		e.Submit(func() { close(done) })
		<-done
	}
}
