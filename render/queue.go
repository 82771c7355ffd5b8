package render

import (
	"runtime"
	"sync"
)

// Queue is a bounded FIFO handoff between pipeline goroutines.
//
// It wraps a buffered channel with a retire signal so producers can tell
// "full, retry" apart from "receiver is gone". The consuming side calls
// Retire when it exits; reliable sends to a retired queue degrade to
// no-ops instead of blocking forever.
type Queue[T any] struct {
	ch      chan T
	retired chan struct{}
	once    sync.Once
}

// NewQueue creates a queue with the given capacity.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{
		ch:      make(chan T, capacity),
		retired: make(chan struct{}),
	}
}

// TrySend attempts to enqueue v, returning false if the queue is full
// or retired.
func (q *Queue[T]) TrySend(v T) bool {
	select {
	case <-q.retired:
		return false
	default:
	}
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// SendReliable enqueues v, retrying in a tight loop while the queue is
// full. It returns true once the value is enqueued and false if the
// queue is retired; either way the control message is never silently
// lost to a transient full queue, and a gone receiver never blocks the
// sender. The busy-wait yields between attempts.
func (q *Queue[T]) SendReliable(v T) bool {
	for {
		select {
		case <-q.retired:
			return false
		default:
		}
		select {
		case q.ch <- v:
			return true
		case <-q.retired:
			return false
		default:
			runtime.Gosched()
		}
	}
}

// Recv blocks until one value is available, returning ok=false once the
// queue has been retired and drained.
func (q *Queue[T]) Recv() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	case <-q.retired:
		// Drain anything that raced with retirement.
		select {
		case v := <-q.ch:
			return v, true
		default:
			var zero T
			return zero, false
		}
	}
}

// TryRecv attempts to dequeue one value, returning false if empty.
func (q *Queue[T]) TryRecv() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Retire marks the queue as having no live receiver. Safe to call more
// than once and from any goroutine.
func (q *Queue[T]) Retire() {
	q.once.Do(func() { close(q.retired) })
}

// Retired reports whether the queue has been retired.
func (q *Queue[T]) Retired() bool {
	select {
	case <-q.retired:
		return true
	default:
		return false
	}
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int { return cap(q.ch) }
