// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular FIFO over a pre-allocated contiguous
// store, addressed through wrapping head/tail indices. It is purely
// sequential: every method is synchronous, returns a definite result, and
// assumes exclusive single-owner mutation. Callers that share one buffer
// across goroutines layer synchronization on top (concurrency.LockedRing).

package ringbuf

import (
	"github.com/momentics/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity sequential ring buffer.
//
// One store slot is always kept unused as a sentinel: head == tail means
// empty, head == next(tail) means full. Usable capacity is therefore
// Cap()-1, and Free()+Len() == Cap()-1 holds in every reachable state.
type RingBuffer[T any] struct {
	store []T // fixed length, never resized; exclusively owned
	head  int // index of the oldest occupied slot
	tail  int // index of the next free write slot
}

// NewFromStore adopts a caller-supplied backing store. The store must have
// length >= 1 and must not be aliased from outside for the buffer's lifetime.
// Panics with api.ErrInvalidCapacity on an empty store.
func NewFromStore[T any](store []T) *RingBuffer[T] {
	if len(store) < 1 {
		panic(api.ErrInvalidCapacity)
	}
	return &RingBuffer[T]{store: store}
}

// New allocates a fresh store of the given length and wraps it.
// Panics with api.ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic(api.ErrInvalidCapacity)
	}
	return &RingBuffer[T]{store: make([]T, capacity)}
}

// next advances an index one slot with wraparound. All index stepping goes
// through this helper; it is the only modular arithmetic in the type.
func (r *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(r.store)
}

// Len returns the number of logically-present elements, in [0, Cap()-1].
func (r *RingBuffer[T]) Len() int {
	if r.tail >= r.head {
		return r.tail - r.head
	}
	return len(r.store) - r.head + r.tail
}

// HasElements reports whether at least one element is present.
func (r *RingBuffer[T]) HasElements() bool {
	return r.head != r.tail
}

// IsFull reports whether the next Enqueue would fail.
func (r *RingBuffer[T]) IsFull() bool {
	return r.head == r.next(r.tail)
}

// Enqueue appends item as the new logical last element.
// Returns false and leaves the buffer untouched when full.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	if r.IsFull() {
		return false
	}
	r.store[r.tail] = item
	r.tail = r.next(r.tail)
	return true
}

// Dequeue removes and returns the oldest element; ok is false when empty.
// The vacated slot is not cleared: it leaves the logical content and is
// overwritten by a future Enqueue.
func (r *RingBuffer[T]) Dequeue() (item T, ok bool) {
	if !r.HasElements() {
		return item, false
	}
	item = r.store[r.head]
	r.head = r.next(r.head)
	return item, true
}

// Free returns how many further Enqueue calls can succeed before the buffer
// is full. Always (Cap()-1) - Len(); never negative under the invariant.
func (r *RingBuffer[T]) Free() int {
	return len(r.store) - 1 - r.Len()
}

// Cap returns the backing store length. Usable capacity is Cap()-1.
func (r *RingBuffer[T]) Cap() int {
	return len(r.store)
}

// Snapshot returns the logical content oldest-first as a fresh slice.
// It is derived from head/tail/store and never aliases the backing store.
func (r *RingBuffer[T]) Snapshot() []T {
	out := make([]T, 0, r.Len())
	for i := r.head; i != r.tail; i = r.next(i) {
		out = append(out, r.store[i])
	}
	return out
}
