package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRunsImmediatelyAndRepeats(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), 5*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	defer h.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestStopEndsLoop(t *testing.T) {
	var calls atomic.Int32
	h := Start(context.Background(), time.Hour, func(context.Context) {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	h.Stop()
	h.Stop()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestParentContextCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Hour, func(context.Context) {})
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on parent cancel")
	}
}
