// File: pool/storepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Store pooling for short-lived rings. A StorePool hands out pre-sized
// backing stores so transient rings avoid per-use allocation; a store put
// back is zeroed so it pins no references while parked.

package pool

import (
	"sync"

	"github.com/momentics/ringkit/api"
)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// StorePool recycles fixed-length backing stores for ring construction.
// A store obtained from Get is forfeited to the ring that adopts it;
// only stores that never backed a live ring go back via Put.
type StorePool[T any] struct {
	size  int
	inner *SyncPool[[]T]
}

// NewStorePool creates a pool of stores of the given length.
// Panics with api.ErrInvalidCapacity if size < 1.
func NewStorePool[T any](size int) *StorePool[T] {
	if size < 1 {
		panic(api.ErrInvalidCapacity)
	}
	return &StorePool[T]{
		size:  size,
		inner: NewSyncPool(func() []T { return make([]T, size) }),
	}
}

// Get returns a store of the pool's configured length.
func (p *StorePool[T]) Get() []T {
	return p.inner.Get()
}

// Put parks a store for reuse. Stores of the wrong length are discarded.
func (p *StorePool[T]) Put(store []T) {
	if len(store) != p.size {
		return
	}
	var zero T
	for i := range store {
		store[i] = zero
	}
	p.inner.Put(store)
}

// Size returns the length of stores this pool hands out.
func (p *StorePool[T]) Size() int {
	return p.size
}
