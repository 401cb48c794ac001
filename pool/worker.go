package pool

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/poolforge/poolforge/internal/types"
)

// worker is the loop run by each of the pool's goroutines: block for the
// next task, execute it with no lock held, deliver the outcome, repeat.
// The loop exits only when the queue reports no more work, which happens
// once the queue is both closed and drained.
func (p *Pool) worker(ctx context.Context) error {
	for {
		t, ok := p.tasks.Pop()
		if !ok {
			return nil
		}

		err := p.execute(ctx, t)
		p.completed.Add(1)

		switch {
		case t.Resolve != nil:
			t.Resolve(err)
		case err != nil && p.conf.onTaskFailure != nil:
			p.conf.onTaskFailure(t.ID, err)
		}
	}
}

// execute runs one task through the rate limiter, retry policy, and panic
// recovery. A failing task never terminates the worker.
func (p *Pool) execute(ctx context.Context, t types.Task) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			// The limiter's error doesn't wrap context errors, so check
			// the context explicitly.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
	}
	return p.runWithRecovery(ctx, t)
}

// runWithRecovery converts a task panic into an error carrying the stack
// trace, so a panicking task surfaces through its Future or the failure
// hook instead of crashing the worker.
func (p *Pool) runWithRecovery(ctx context.Context, t types.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return p.runWithRetry(ctx, t)
}

// runWithRetry invokes the task up to maxAttempts times, sleeping between
// attempts per the configured backoff strategy.
func (p *Pool) runWithRetry(ctx context.Context, t types.Task) error {
	maxAttempts := max(p.conf.maxAttempts, 1)

	var err error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-time.After(p.backoff.NextDelay(attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err = t.Invoke(ctx); err == nil {
			return nil
		}
	}

	return err
}
