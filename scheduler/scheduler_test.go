package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("condition not reached in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestEvery_Fires(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var ticks atomic.Int64
	s.Every("tick", 10*time.Millisecond, func() { ticks.Add(1) })

	waitFor(t, func() bool { return ticks.Load() >= 3 })
}

func TestRemove_StopsTask(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var ticks atomic.Int64
	s.Every("tick", 10*time.Millisecond, func() { ticks.Add(1) })
	waitFor(t, func() bool { return ticks.Load() >= 1 })

	s.Remove("tick")
	stopped := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), stopped+1, "at most one in-flight tick after remove")
}

func TestEvery_SameNameReplaces(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var first, second atomic.Int64
	s.Every("tick", 10*time.Millisecond, func() { first.Add(1) })
	s.Every("tick", 10*time.Millisecond, func() { second.Add(1) })

	waitFor(t, func() bool { return second.Load() >= 2 })
	assert.Zero(t, first.Load(), "replaced task never runs")
}

func TestAfter_RunsOnce(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var runs atomic.Int64
	s.After("once", 10*time.Millisecond, func() { runs.Add(1) })

	waitFor(t, func() bool { return runs.Load() == 1 })
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(1), runs.Load())
}

func TestRun_RecoversPanic(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var ticks atomic.Int64
	s.Every("flaky", 10*time.Millisecond, func() {
		if ticks.Add(1) == 1 {
			panic("bad tick")
		}
	})

	// The loop survives the first panicking tick.
	waitFor(t, func() bool { return ticks.Load() >= 3 })
}
