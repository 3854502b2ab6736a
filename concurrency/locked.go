// File: concurrency/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LockedRing layers a mutex over the sequential ring buffer for callers
// that share one buffer across goroutines. The core type stays lock-free
// of synchronization; this wrapper is the externally-layered protocol.

package concurrency

import (
	"sync"

	"github.com/momentics/ringkit/api"
	"github.com/momentics/ringkit/ringbuf"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*LockedRing[any])(nil)

// LockedRing is a mutex-guarded ring buffer. It keeps the reserved-slot
// semantics of ringbuf.RingBuffer: usable capacity is Cap()-1.
type LockedRing[T any] struct {
	mu   sync.Mutex
	ring *ringbuf.RingBuffer[T]
}

// NewLockedRing allocates a locked ring with the given store capacity.
func NewLockedRing[T any](capacity int) *LockedRing[T] {
	return &LockedRing[T]{ring: ringbuf.New[T](capacity)}
}

// NewLockedRingFromStore adopts a caller-supplied store. The store must not
// be aliased from outside after construction.
func NewLockedRingFromStore[T any](store []T) *LockedRing[T] {
	return &LockedRing[T]{ring: ringbuf.NewFromStore(store)}
}

// Enqueue appends an item; returns false if full.
func (l *LockedRing[T]) Enqueue(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Enqueue(item)
}

// Dequeue removes the oldest item; ok is false if empty.
func (l *LockedRing[T]) Dequeue() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Dequeue()
}

// Len returns the current number of items.
func (l *LockedRing[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Len()
}

// Cap returns the backing store length.
func (l *LockedRing[T]) Cap() int {
	return l.ring.Cap()
}

// Free returns how many further Enqueue calls can succeed.
func (l *LockedRing[T]) Free() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Free()
}

// Snapshot returns the logical content oldest-first.
func (l *LockedRing[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Snapshot()
}
