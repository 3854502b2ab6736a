// File: concurrency/mpmc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MPMCRing is a lock-free bounded ring using per-cell sequence numbers,
// based on the pattern by Dmitry Vyukov for MPMC queues. Head and tail are
// padded to separate cache lines to avoid false sharing.
//
// Unlike the sequential reserved-slot ring, capacity is rounded up to a
// power of two and every slot is usable: Free()+Len() == Cap().

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*MPMCRing[any])(nil)

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// MPMCRing is a lock-free fixed-capacity ring buffer safe for concurrent
// producers and consumers.
type MPMCRing[T any] struct {
	head  uint64
	_     cpu.CacheLinePad
	tail  uint64
	_     cpu.CacheLinePad
	mask  uint64
	cells []cell[T]
}

// NewMPMCRing allocates a ring with capacity rounded up to a power of two
// (minimum 2).
func NewMPMCRing[T any](capacity int) *MPMCRing[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	r := &MPMCRing[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds item; returns false if full.
func (r *MPMCRing[T]) Enqueue(item T) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns the oldest item; ok false if empty.
func (r *MPMCRing[T]) Dequeue() (T, bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				item := c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			var zero T
			return zero, false // empty
		}
		// head moved, retry
	}
}

// Len returns the number of items currently in the buffer.
func (r *MPMCRing[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if tail < head {
		return 0
	}
	n := int(tail - head)
	if n > len(r.cells) {
		n = len(r.cells)
	}
	return n
}

// Cap returns the fixed buffer capacity.
func (r *MPMCRing[T]) Cap() int {
	return len(r.cells)
}

// Free returns remaining capacity.
func (r *MPMCRing[T]) Free() int {
	return r.Cap() - r.Len()
}
