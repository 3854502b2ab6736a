// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Sequential fixed-capacity ring buffer for single-owner FIFO workloads.
// Implements the classic two-index circular layout with one reserved slot,
// so head == tail always means empty and no element counter is needed.
// For cross-goroutine use see the concurrency package.
package ringbuf
