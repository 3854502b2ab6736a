// File: ringlog/ringlog.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ringlog captures the most recent log entries in a bounded ring.
// Core implements zapcore.Core and can be tee'd next to a regular sink to
// keep an in-memory tail of the log for diagnostics. Overflow drops the
// oldest entry: the ring rejects the write when full, so the core pops one
// slot and retries.

package ringlog

import (
	"sync"

	"go.uber.org/zap/zapcore"

	"github.com/momentics/ringkit/api"
	"github.com/momentics/ringkit/ringbuf"
)

// Entry is one captured log record: the zapcore entry plus its resolved
// field set (context fields from With followed by call-site fields).
type Entry struct {
	zapcore.Entry
	Fields []zapcore.Field
}

// shared is the capture state common to a Core and all its With children.
type shared struct {
	mu   sync.Mutex
	ring *ringbuf.RingBuffer[Entry]
}

// Core is a zapcore.Core retaining the last capacity entries.
type Core struct {
	zapcore.LevelEnabler
	state  *shared
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a capture core retaining up to capacity entries at or
// above the enabler's level. Panics with api.ErrInvalidCapacity if
// capacity < 1.
func NewCore(enab zapcore.LevelEnabler, capacity int) *Core {
	if capacity < 1 {
		panic(api.ErrInvalidCapacity)
	}
	// One extra slot: the ring reserves a sentinel, so a store of
	// capacity+1 retains exactly capacity entries.
	return &Core{
		LevelEnabler: enab,
		state:        &shared{ring: ringbuf.New[Entry](capacity + 1)},
	}
}

// With returns a child core that attaches fields to every entry it writes.
// Parent and children share one ring.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	child := &Core{
		LevelEnabler: c.LevelEnabler,
		state:        c.state,
		fields:       make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	child.fields = append(child.fields, c.fields...)
	child.fields = append(child.fields, fields...)
	return child
}

// Check adds this core to the checked entry if the level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write records the entry, evicting the oldest one when the ring is full.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := Entry{Entry: ent}
	rec.Fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	rec.Fields = append(rec.Fields, c.fields...)
	rec.Fields = append(rec.Fields, fields...)

	c.state.mu.Lock()
	for !c.state.ring.Enqueue(rec) {
		c.state.ring.Dequeue()
	}
	c.state.mu.Unlock()
	return nil
}

// Sync is a no-op; entries live in memory only.
func (c *Core) Sync() error { return nil }

// Entries returns the captured entries oldest-first.
func (c *Core) Entries() []Entry {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.ring.Snapshot()
}

// Len returns the number of currently retained entries.
func (c *Core) Len() int {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.ring.Len()
}
