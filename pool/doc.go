// Package pool provides a fixed-size worker pool with graceful,
// work-draining shutdown.
//
// A Pool owns a fixed set of worker goroutines sharing one FIFO task
// queue. Tasks are submitted either fire-and-forget with Go, or with
// Submit, which returns a Future the caller can block on, poll, or select
// against. Tasks are dequeued in strict submission order; completion order
// across multiple workers is not guaranteed.
//
// # Basic Usage
//
//	p, err := pool.New(pool.WithWorkerCount(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(5 * time.Second)
//
//	// Fire-and-forget
//	_ = p.Go(func(ctx context.Context) error {
//	    return doWork(ctx)
//	})
//
//	// Value-returning
//	future, _ := pool.Submit(p, func(ctx context.Context) (int, error) {
//	    return compute(ctx)
//	})
//	value, id, err := future.Get()
//
// # Shutdown Semantics
//
// Shutdown flips the pool to stopping, rejects new submissions with
// ErrPoolClosed, and lets the workers finish every task already queued
// before joining them. It is a graceful drain, not a cancel: nothing
// submitted before Shutdown is skipped. Shutdown is idempotent and safe to
// call from multiple goroutines.
//
// # Error Handling
//
// A task failure never stops a worker. For Submit tasks the error (or a
// recovered panic, converted to an error with a stack trace) is delivered
// through the Future. Fire-and-forget failures are reported to the
// optional WithOnTaskFailure hook and otherwise discarded.
//
// # Configuration Options
//
//   - WithWorkerCount(n): Set number of workers (default: GOMAXPROCS)
//   - WithRateLimit(tasksPerSecond, burst): Throttle task execution
//   - WithRetryPolicy(maxAttempts, initialDelay): Retry failed tasks with backoff
//   - WithJitteredBackoff(jitterFactor): Randomize retry delays
//   - WithOnTaskFailure(fn): Observe fire-and-forget task failures
package pool
