package pool

import (
	"context"

	"github.com/poolforge/poolforge/internal/types"
)

// Go submits a fire-and-forget task. The task is enqueued in submission
// order and executed by the next free worker; nothing is returned to the
// caller. A nil fn is a no-op.
//
// Returns ErrPoolClosed once Shutdown has been requested — tasks are
// rejected, never silently dropped.
func (p *Pool) Go(fn TaskFunc) error {
	if fn == nil {
		return nil
	}
	if p.State() != StateRunning {
		return ErrPoolClosed
	}

	t := types.Task{
		ID:     p.taskID.Add(1),
		Invoke: fn,
	}
	return p.enqueue(t)
}

// Submit submits a value-returning task and returns a Future resolving to
// its value or error. The worker executing the task writes the outcome
// exactly once; Get blocks until it is available and is idempotent. If the
// task can never run (pool torn down first), the Future resolves with
// ErrCancelled rather than blocking its holder forever.
//
// Returns ErrNilTask for a nil fn and ErrPoolClosed once Shutdown has been
// requested.
//
// Example:
//
//	future, err := pool.Submit(p, func(ctx context.Context) (int, error) {
//	    return expensiveComputation(ctx)
//	})
//	if err != nil {
//	    return err
//	}
//	value, id, err := future.Get()
func Submit[R any](p *Pool, fn ResultFunc[R]) (*Future[R], error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	if p.State() != StateRunning {
		return nil, ErrPoolClosed
	}

	id := p.taskID.Add(1)
	future := types.NewFuture[R, int64]()

	// The invoke closure captures the value; Resolve publishes it (or the
	// terminal error) after the worker finishes all attempts. Both run on
	// the executing worker, so value needs no extra synchronization.
	var value R
	t := types.Task{
		ID: id,
		Invoke: func(ctx context.Context) error {
			v, err := fn(ctx)
			if err != nil {
				return err
			}
			value = v
			return nil
		},
		Resolve: func(err error) {
			if err != nil {
				var zero R
				future.Publish(types.Result[R, int64]{Value: zero, Key: id, Error: err})
				return
			}
			future.Publish(types.Result[R, int64]{Value: value, Key: id})
		},
	}

	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return future, nil
}

// enqueue pushes t onto the shared queue, translating a close race (state
// observed running, queue closed in between) into ErrPoolClosed.
func (p *Pool) enqueue(t types.Task) error {
	if err := p.tasks.Push(t); err != nil {
		return ErrPoolClosed
	}
	p.submitted.Add(1)
	return nil
}
