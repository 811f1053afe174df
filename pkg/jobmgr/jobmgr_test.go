package jobmgr

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartEveryRunsAndStops(t *testing.T) {
	jm := New()
	defer jm.StopAll()

	var runs atomic.Int32
	require.NoError(t, jm.StartEvery("tick", 10*time.Millisecond, func(context.Context) {
		runs.Add(1)
	}))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, jm.Stop("tick"))
	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}

func TestDuplicateNameRejected(t *testing.T) {
	jm := New()
	defer jm.StopAll()

	require.NoError(t, jm.StartEvery("sweep", time.Hour, func(context.Context) {}))
	assert.Error(t, jm.StartEvery("sweep", time.Hour, func(context.Context) {}))
	assert.Equal(t, []string{"sweep"}, jm.List())
}

func TestStartOnceAfterRunsOnceAndForgets(t *testing.T) {
	jm := New()
	defer jm.StopAll()

	var runs atomic.Int32
	require.NoError(t, jm.StartOnceAfter("warmup", 10*time.Millisecond, func(context.Context) {
		runs.Add(1)
	}))

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	// The finished job releases its name for reuse.
	assert.Eventually(t, func() bool { return len(jm.List()) == 0 }, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestStartOnceAfterStoppedBeforeDelay(t *testing.T) {
	jm := New()

	var runs atomic.Int32
	require.NoError(t, jm.StartOnceAfter("warmup", time.Hour, func(context.Context) {
		runs.Add(1)
	}))
	jm.StopAll()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestStopUnknownJob(t *testing.T) {
	jm := New()
	assert.Error(t, jm.Stop("nope"))
}

func TestUntilNext(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 11*time.Hour+55*time.Minute, untilNext(now, 23, 55))
	// Already past today: schedules for tomorrow.
	assert.Equal(t, 23*time.Hour, untilNext(now, 11, 0))
	// Exactly now: schedules for tomorrow, not immediately.
	assert.Equal(t, 24*time.Hour, untilNext(now, 12, 0))
}
