package pool_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poolforge/poolforge/pool"
)

func TestErrors_PanicSurfacesThroughFuture(t *testing.T) {
	p, err := pool.New(pool.WithWorkerCount(1))
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	future, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		panic("something went wrong")
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	_, _, err = future.Get()
	if err == nil {
		t.Fatal("expected panic to surface as error")
	}
	if !strings.Contains(err.Error(), "something went wrong") {
		t.Errorf("expected panic message in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "stack trace") {
		t.Errorf("expected stack trace in error, got %v", err)
	}
}

func TestErrors_PanicDoesNotKillWorker(t *testing.T) {
	p, err := pool.New(pool.WithWorkerCount(1))
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	if err := p.Go(func(ctx context.Context) error {
		panic("boom")
	}); err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	// The same (only) worker must survive to run the next task.
	future, err := pool.Submit(p, func(ctx context.Context) (string, error) {
		return "alive", nil
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	value, _, err := future.Get()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if value != "alive" {
		t.Errorf("expected 'alive', got %v", value)
	}
}

func TestErrors_FireAndForgetFailureHook(t *testing.T) {
	var mu sync.Mutex
	var hookID int64
	var hookErr error
	hooked := make(chan struct{})

	p, err := pool.New(
		pool.WithWorkerCount(1),
		pool.WithOnTaskFailure(func(taskID int64, err error) {
			mu.Lock()
			hookID = taskID
			hookErr = err
			mu.Unlock()
			close(hooked)
		}),
	)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	if err := p.Go(func(ctx context.Context) error {
		return errors.New("background failure")
	}); err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	select {
	case <-hooked:
	case <-time.After(time.Second):
		t.Fatal("failure hook was never called")
	}

	mu.Lock()
	defer mu.Unlock()
	if hookID != 1 {
		t.Errorf("expected task ID 1, got %d", hookID)
	}
	if hookErr == nil || hookErr.Error() != "background failure" {
		t.Errorf("expected 'background failure', got %v", hookErr)
	}
}

func TestErrors_HookNotCalledForFutureTasks(t *testing.T) {
	var hookCalls atomic.Int32

	p, err := pool.New(
		pool.WithWorkerCount(1),
		pool.WithOnTaskFailure(func(taskID int64, err error) {
			hookCalls.Add(1)
		}),
	)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	future, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		return 0, errors.New("checked failure")
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	if _, _, err := future.Get(); err == nil {
		t.Error("expected error through future")
	}

	if err := p.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	// Submit failures travel through the future, not the hook.
	if got := hookCalls.Load(); got != 0 {
		t.Errorf("expected 0 hook calls, got %d", got)
	}
}

func TestErrors_RetryPolicy(t *testing.T) {
	var attempts atomic.Int32

	p, err := pool.New(
		pool.WithWorkerCount(1),
		pool.WithRetryPolicy(3, 10*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	future, err := pool.Submit(p, func(ctx context.Context) (string, error) {
		if attempts.Add(1) < 3 {
			return "", errors.New("temporary failure")
		}
		return "success", nil
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	value, _, err := future.Get()
	if err != nil {
		t.Errorf("expected no error after retries, got %v", err)
	}
	if value != "success" {
		t.Errorf("expected 'success', got %v", value)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestErrors_RetryExhaustionReturnsLastError(t *testing.T) {
	var attempts atomic.Int32

	p, err := pool.New(
		pool.WithWorkerCount(1),
		pool.WithRetryPolicy(3, time.Millisecond),
		pool.WithJitteredBackoff(0.2),
	)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer p.Shutdown(time.Second)

	future, err := pool.Submit(p, func(ctx context.Context) (int, error) {
		return 0, errors.New("attempt " + string(rune('0'+attempts.Add(1))))
	})
	if err != nil {
		t.Fatalf("failed to submit task: %v", err)
	}

	_, _, err = future.Get()
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if err.Error() != "attempt 3" {
		t.Errorf("expected last attempt's error, got %v", err)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestErrors_RateLimitThrottlesExecution(t *testing.T) {
	// 100 tasks/sec with burst 1: 5 tasks need at least ~40ms.
	p, err := pool.New(
		pool.WithWorkerCount(4),
		pool.WithRateLimit(100, 1),
	)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	start := time.Now()
	for range 5 {
		if err := p.Go(func(ctx context.Context) error { return nil }); err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}
	if err := p.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected rate limiting to slow execution, finished in %v", elapsed)
	}
	if got := p.Completed(); got != 5 {
		t.Errorf("expected 5 completed, got %d", got)
	}
}
