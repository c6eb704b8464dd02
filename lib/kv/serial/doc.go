// Package serial provides a single-consumer task executor with strict FIFO
// ordering.
//
// Features and Guarantees:
//
//   - One-at-a-time execution: a single worker goroutine runs all tasks, so
//     no two task bodies ever execute concurrently
//   - Strict FIFO: tasks run in the order their Submit calls were linearized
//   - Thread-safe submission: any number of goroutines may Submit concurrently
//   - Graceful shutdown: Close stops new submissions, drains already accepted
//     tasks and waits for the worker to exit; Close is idempotent
//
// The executor trades per-task parallelism for simplicity: one global
// serialization point per store instance is sufficient for an I/O-bound,
// single-directory workload and removes the need for per-key locking.
package serial
