// File: control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Runtime counters for ring buffer monitoring.
// StatsRing decorates any api.Ring and exposes a thread-safe snapshot map.

package control

import (
	"sync"
	"time"

	"github.com/momentics/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*StatsRing[any])(nil)

// StatsRing counts ring traffic: admitted and rejected enqueues, dequeues,
// reads from empty, and the occupancy high-water mark.
type StatsRing[T any] struct {
	inner api.Ring[T]

	mu         sync.RWMutex
	enqueued   uint64
	rejected   uint64
	dequeued   uint64
	emptyReads uint64
	highWater  int
	updated    time.Time
}

// NewStatsRing wraps an existing ring with traffic counters.
func NewStatsRing[T any](inner api.Ring[T]) *StatsRing[T] {
	return &StatsRing[T]{inner: inner}
}

// Enqueue delegates and records the outcome.
func (s *StatsRing[T]) Enqueue(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.inner.Enqueue(item)
	if ok {
		s.enqueued++
		if n := s.inner.Len(); n > s.highWater {
			s.highWater = n
		}
	} else {
		s.rejected++
	}
	s.updated = time.Now()
	return ok
}

// Dequeue delegates and records the outcome.
func (s *StatsRing[T]) Dequeue() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.inner.Dequeue()
	if ok {
		s.dequeued++
	} else {
		s.emptyReads++
	}
	s.updated = time.Now()
	return item, ok
}

// Len delegates to the wrapped ring.
func (s *StatsRing[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

// Cap delegates to the wrapped ring.
func (s *StatsRing[T]) Cap() int {
	return s.inner.Cap()
}

// Free delegates to the wrapped ring.
func (s *StatsRing[T]) Free() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Free()
}

// Snapshot returns the latest counters and occupancy figures.
func (s *StatsRing[T]) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"enqueued":    s.enqueued,
		"rejected":    s.rejected,
		"dequeued":    s.dequeued,
		"empty_reads": s.emptyReads,
		"high_water":  s.highWater,
		"len":         s.inner.Len(),
		"cap":         s.inner.Cap(),
		"free":        s.inner.Free(),
		"updated":     s.updated,
	}
}
