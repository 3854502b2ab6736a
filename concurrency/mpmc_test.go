// File: concurrency/mpmc_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMPMCRingCapacityRounding(t *testing.T) {
	assert.Equal(t, 2, NewMPMCRing[int](0).Cap())
	assert.Equal(t, 8, NewMPMCRing[int](5).Cap())
	assert.Equal(t, 16, NewMPMCRing[int](16).Cap())
}

func TestMPMCRingSequential(t *testing.T) {
	r := NewMPMCRing[int](4)
	for i := 0; i < 4; i++ {
		require.True(t, r.Enqueue(i))
	}
	assert.False(t, r.Enqueue(99), "full at power-of-two capacity")
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 0, r.Free())

	for i := 0; i < 4; i++ {
		v, ok := r.Dequeue()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := r.Dequeue()
	assert.False(t, ok)
}

func TestMPMCRingStress(t *testing.T) {
	const (
		producers        = 10
		consumers        = 10
		itemsPerProducer = 10000
	)
	r := NewMPMCRing[int](1024)

	var sentSum, receivedSum, receivedCount int64
	total := int64(producers * itemsPerProducer)

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		pid := p
		g.Go(func() error {
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !r.Enqueue(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
			return nil
		})
	}
	for c := 0; c < consumers; c++ {
		g.Go(func() error {
			for {
				if val, ok := r.Dequeue(); ok {
					atomic.AddInt64(&receivedSum, int64(val))
					if atomic.AddInt64(&receivedCount, 1) == total {
						return nil
					}
				} else {
					if atomic.LoadInt64(&receivedCount) >= total {
						return nil
					}
					runtime.Gosched()
				}
			}
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, sentSum, receivedSum, "checksum mismatch")
}
