// SPDX-License-Identifier: EPL-2.0

package workpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Workers(3))
	assert.Equal(t, runtime.GOMAXPROCS(0), Workers(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), Workers(-1))
}

func TestRun_IndexedResults(t *testing.T) {
	t.Parallel()

	out := make([]int, 1000)
	err := Run(context.Background(), 4, len(out), func(_ context.Context, i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)

	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int64
	err := Run(context.Background(), 2, 50, func(_ context.Context, _ int) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		runtime.Gosched()
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestRun_FirstErrorWins(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := Run(context.Background(), 1, 10, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "task 3")
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	err := Run(ctx, 2, 10, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, Run(context.Background(), 4, 0, func(context.Context, int) error {
		t.Fatal("task called")
		return nil
	}))
}
