package pool

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/poolforge/poolforge/internal/algorithms"
	"github.com/poolforge/poolforge/internal/queue"
	"github.com/poolforge/poolforge/internal/types"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Pool is a fixed-size worker pool. Workers are created by New, share one
// FIFO task queue, and are joined by Shutdown after draining it.
type Pool struct {
	conf    *config
	limiter *rate.Limiter
	backoff algorithms.BackoffStrategy

	tasks  *queue.Queue[types.Task]
	ctx    context.Context
	cancel context.CancelFunc

	state  atomic.Int32  // State values; transitions only move forward
	done   chan struct{} // closed once the last worker has exited
	taskID atomic.Int64

	submitted atomic.Uint64
	completed atomic.Uint64
}

// New constructs a live pool in the running state and starts its workers.
// It returns ErrNoWorkers if the configured worker count is not positive:
// a zero-worker pool would enqueue tasks that can never execute, so the
// degenerate case is rejected up front rather than left to hang.
//
// Example:
//
//	p, err := pool.New(pool.WithWorkerCount(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(5 * time.Second)
func New(opts ...Option) (*Pool, error) {
	conf := newConfig(opts...)
	if conf.workerCount <= 0 {
		return nil, ErrNoWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		conf:    conf,
		limiter: conf.rateLimiter,
		backoff: algorithms.NewBackoffStrategy(
			conf.backoffType,
			conf.backoffInitialDelay,
			conf.backoffMaxDelay,
			conf.backoffJitterFactor,
		),
		tasks:  queue.New[types.Task](),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	var g errgroup.Group
	for range conf.workerCount {
		g.Go(func() error {
			return p.worker(ctx)
		})
	}

	go func() {
		_ = g.Wait()
		// Workers only exit once the queue is closed and empty, so this
		// sweep normally finds nothing. Anything it does find can never
		// run, and its holder must not block forever.
		p.cancelPending()
		p.state.Store(int32(StateStopped))
		p.cancel()
		close(p.done)
	}()

	return p, nil
}

// Shutdown gracefully shuts the pool down: it rejects new submissions,
// wakes every blocked worker, waits for all already-queued tasks to finish,
// and joins the workers. Idempotent and safe to call concurrently; every
// call waits for the drain to complete.
//
// A positive timeout bounds the wait and yields ErrShutdownTimeout when
// exceeded; 0 waits forever.
//
// Example:
//
//	if err := p.Shutdown(5 * time.Second); err != nil {
//	    log.Printf("shutdown: %v", err)
//	}
func (p *Pool) Shutdown(timeout time.Duration) error {
	if p.state.CompareAndSwap(int32(StateRunning), int32(StateStopping)) {
		p.tasks.Close()
	}
	return waitUntil(p.done, timeout)
}

// cancelPending resolves futures of tasks that were queued but can never
// execute, so Get returns ErrCancelled instead of blocking indefinitely.
func (p *Pool) cancelPending() {
	for {
		t, ok := p.tasks.TryPop()
		if !ok {
			return
		}
		if t.Resolve != nil {
			t.Resolve(ErrCancelled)
		}
	}
}

// State returns the pool's current lifecycle state.
func (p *Pool) State() State {
	return State(p.state.Load())
}

// QueueDepth returns the number of tasks waiting to be executed.
func (p *Pool) QueueDepth() int {
	return p.tasks.Len()
}

// Submitted returns the number of tasks accepted by Go and Submit.
func (p *Pool) Submitted() uint64 {
	return p.submitted.Load()
}

// Completed returns the number of tasks that finished executing,
// successfully or not.
func (p *Pool) Completed() uint64 {
	return p.completed.Load()
}
