package types

import (
	"context"
	"sync"
)

// Future is the submitter-facing half of a single-assignment result cell.
// The worker executing the task publishes the outcome exactly once; any
// number of holders may block on Get, poll with TryGet, or select on Done.
// Reads after resolution always return the identical outcome.
type Future[R any, K comparable] struct {
	mu    sync.Mutex
	ready bool
	res   Result[R, K]
	done  chan struct{} // closed when the outcome is published
}

// NewFuture creates an unresolved future.
func NewFuture[R any, K comparable]() *Future[R, K] {
	return &Future[R, K]{done: make(chan struct{})}
}

// Publish resolves the future with res. The first call wins; subsequent
// calls are no-ops, preserving the single-assignment invariant even when a
// cancellation races with a late result.
func (f *Future[R, K]) Publish(res Result[R, K]) {
	f.mu.Lock()
	if !f.ready {
		f.res = res
		f.ready = true
		close(f.done)
	}
	f.mu.Unlock()
}

// Get blocks until the future resolves, then returns the value, the task
// key, and the task's error. Repeated calls return the same outcome.
func (f *Future[R, K]) Get() (R, K, error) {
	<-f.done
	res := f.load()
	return res.Value, res.Key, res.Error
}

// GetWithContext behaves like Get but gives up when ctx expires, returning
// zero values and the context's error. The future itself stays valid and a
// later Get still observes the real outcome.
func (f *Future[R, K]) GetWithContext(ctx context.Context) (R, K, error) {
	select {
	case <-f.done:
		res := f.load()
		return res.Value, res.Key, res.Error
	case <-ctx.Done():
		var zeroV R
		var zeroK K
		return zeroV, zeroK, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. ready reports whether the
// future has resolved; when false the other return values are zero.
func (f *Future[R, K]) TryGet() (value R, key K, err error, ready bool) {
	select {
	case <-f.done:
		res := f.load()
		return res.Value, res.Key, res.Error, true
	default:
		return value, key, err, false
	}
}

// Done returns a channel that is closed once the future resolves,
// for use in select statements.
func (f *Future[R, K]) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the outcome is available without blocking.
func (f *Future[R, K]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[R, K]) load() Result[R, K] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.res
}
