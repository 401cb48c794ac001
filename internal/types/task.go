// Package types holds the shared task and future primitives used by the
// pool package. They live here so the queue and the pool can exchange
// type-erased work units while the result side stays fully generic.
package types

import "context"

// Task is a type-erased, zero-argument unit of work. It is moved into the
// queue by the submitter, owned exclusively by the executing worker until
// completion, and invoked exactly once.
type Task struct {
	// ID is the pool-assigned submission sequence number.
	ID int64

	// Invoke runs one attempt of the work and reports its error.
	// The worker may call it again when a retry policy is configured.
	Invoke func(ctx context.Context) error

	// Resolve publishes the final outcome to the task's future.
	// It is nil for fire-and-forget tasks, which have no future.
	// err carries the terminal failure (nil on success); the value side
	// of the outcome is captured by the Invoke closure itself.
	Resolve func(err error)
}
