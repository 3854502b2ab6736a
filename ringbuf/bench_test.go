// File: ringbuf/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf

import "testing"

func BenchmarkEnqueueDequeue(b *testing.B) {
	r := New[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Enqueue(i)
		r.Dequeue()
	}
}

func BenchmarkFillDrain(b *testing.B) {
	r := New[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for r.Enqueue(i) {
		}
		for {
			if _, ok := r.Dequeue(); !ok {
				break
			}
		}
	}
}
