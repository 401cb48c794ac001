package pool

import (
	"context"

	"github.com/poolforge/poolforge/internal/types"
)

// TaskFunc is a fire-and-forget unit of work. The context is the pool's
// own context, cancelled only after the pool has fully stopped. A non-nil
// error is reported to the WithOnTaskFailure hook if one is configured.
type TaskFunc func(ctx context.Context) error

// ResultFunc is a value-returning unit of work submitted via Submit.
// Its value or error is delivered through the returned Future.
type ResultFunc[R any] func(ctx context.Context) (R, error)

// Future is the handle to a pending task result. The int64 key returned
// alongside the value is the pool-assigned task ID.
type Future[R any] = types.Future[R, int64]

// State is the pool's lifecycle state. Transitions only move forward:
// StateRunning -> StateStopping -> StateStopped.
type State int32

const (
	// StateRunning accepts submissions and executes tasks.
	StateRunning State = iota
	// StateStopping rejects submissions while workers drain the queue.
	StateStopping
	// StateStopped means the queue is empty and every worker has exited.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
