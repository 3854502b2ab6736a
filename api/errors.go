// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the ringkit library.

package api

import "fmt"

var (
	// ErrInvalidCapacity is the panic value raised when a ring is constructed
	// with a backing store of length zero. Capacity >= 1 is a caller contract,
	// not a runtime failure mode; constructors fail fast instead of producing
	// an unusable buffer.
	ErrInvalidCapacity = fmt.Errorf("ring capacity must be at least 1")
)
