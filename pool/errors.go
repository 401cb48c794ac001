package pool

import "errors"

var (
	// ErrPoolClosed is returned by Go and Submit once Shutdown has been
	// requested. Submissions are rejected, never silently dropped.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrCancelled resolves a Future whose task can provably never run,
	// so holders are not left blocking forever.
	ErrCancelled = errors.New("task cancelled before execution")

	// ErrNoWorkers is returned by New when the configured worker count is
	// not positive. A pool with zero workers would accept tasks it can
	// never execute.
	ErrNoWorkers = errors.New("pool requires at least one worker")

	// ErrNilTask is returned by Submit for a nil task function.
	ErrNilTask = errors.New("nil task function")

	// ErrShutdownTimeout is returned by Shutdown when the drain outlives
	// the caller's timeout. The drain itself keeps running.
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)
