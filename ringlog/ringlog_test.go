// File: ringlog/ringlog_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringlog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCoreRetainsTail(t *testing.T) {
	core := NewCore(zapcore.InfoLevel, 3)
	logger := zap.New(core)

	for i := 0; i < 10; i++ {
		logger.Info(fmt.Sprintf("msg-%d", i))
	}

	entries := core.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "msg-7", entries[0].Message)
	assert.Equal(t, "msg-8", entries[1].Message)
	assert.Equal(t, "msg-9", entries[2].Message)
}

func TestCoreLevelFilter(t *testing.T) {
	core := NewCore(zapcore.WarnLevel, 8)
	logger := zap.New(core)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("kept too")

	entries := core.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestCoreWithFields(t *testing.T) {
	core := NewCore(zapcore.InfoLevel, 4)
	logger := zap.New(core).With(zap.String("component", "worker"))

	logger.Info("hello", zap.Int("n", 7))

	entries := core.Entries()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Fields, 2)
	assert.Equal(t, "component", entries[0].Fields[0].Key)
	assert.Equal(t, "n", entries[0].Fields[1].Key)
}

func TestCoreSharedAcrossChildren(t *testing.T) {
	core := NewCore(zapcore.InfoLevel, 8)
	logger := zap.New(core)

	logger.Info("parent")
	logger.With(zap.String("k", "v")).Info("child")

	assert.Equal(t, 2, core.Len())
}

func TestCoreConcurrentWrites(t *testing.T) {
	core := NewCore(zapcore.InfoLevel, 64)
	logger := zap.New(core)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				logger.Info("burst", zap.Int("goroutine", id))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 64, core.Len(), "retention clipped to capacity")
}

func TestZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewCore(zapcore.InfoLevel, 0) })
}
