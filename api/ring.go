// Package api
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO ring buffer contract shared by all ringkit implementations.

package api

// Ring is the contract of a fixed-capacity FIFO ring buffer.
//
// An implementation documents its own capacity convention: the sequential
// reserved-slot ring keeps one sentinel slot free (Cap()-1 usable), while
// the lock-free ring uses its full power-of-two capacity. In either case
// Free()+Len() equals the usable capacity at all times.
type Ring[T any] interface {
	// Enqueue appends an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns the fixed backing store capacity.
	Cap() int
	// Free returns how many further Enqueue calls can succeed.
	Free() int
}
