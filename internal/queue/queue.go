// Package queue provides the blocking FIFO task queue shared by all
// workers of a pool.
//
// The queue is unbounded: Push appends and returns immediately, waking at
// most one blocked consumer. Pop removes the head, blocking while the queue
// is empty and still open. Closing the queue wakes every waiter; consumers
// then drain whatever is left and finally receive the "no more work"
// sentinel (ok == false) once the queue is both closed and empty. This is
// how a worker distinguishes "empty but running, keep waiting" from
// "empty and stopping, exit".
package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Push once Close has been called.
var ErrClosed = errors.New("queue is closed")

// Queue is a synchronized FIFO supporting concurrent producers and
// consumers. The zero value is not usable; use New.
type Queue[T any] struct {
	mu     sync.Mutex
	nempty *sync.Cond // signalled on push and on close
	items  []T
	head   int // index of the current head within items
	closed bool
}

// New creates an open, empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.nempty = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail and wakes one blocked consumer. It never
// blocks the caller. Returns ErrClosed if the queue has been closed.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	// A signal with no waiter is a no-op wake: the item is already
	// visible, so a consumer that starts waiting later re-checks the
	// queue before blocking and cannot miss it.
	q.nempty.Signal()
	return nil
}

// Pop removes and returns the head item, blocking while the queue is empty
// and open. Once the queue is closed, Pop keeps returning remaining items
// in FIFO order and reports ok == false only when nothing is left.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if q.head < len(q.items) {
			return q.take(), true
		}
		if q.closed {
			return v, false
		}
		q.nempty.Wait()
	}
}

// TryPop removes and returns the head item without blocking.
// It reports ok == false when the queue is empty, open or not.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head < len(q.items) {
		return q.take(), true
	}
	return v, false
}

// take pops the head slot. Caller must hold mu and have checked non-empty.
func (q *Queue[T]) take() T {
	var zero T
	v := q.items[q.head]
	q.items[q.head] = zero // release the reference for GC
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v
}

// Close marks the queue closed and wakes every blocked consumer.
// Items already queued remain poppable. Safe to call more than once.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.nempty.Broadcast()
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
