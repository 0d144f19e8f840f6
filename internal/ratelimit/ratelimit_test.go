package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(0, time.Second)
	require.Error(t, err)

	_, err = New(-3, time.Second)
	require.Error(t, err)

	_, err = New(5, 0)
	require.Error(t, err)

	_, err = New(5, -time.Second)
	require.Error(t, err)
}

func TestAcquireWithinBudgetDoesNotBlock(t *testing.T) {
	limiter, err := New(3, time.Minute)
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(context.Background()))
	}
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestAcquireBlocksAcrossWindow(t *testing.T) {
	window := 300 * time.Millisecond
	limiter, err := New(2, window)
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(context.Background()))
	}
	require.GreaterOrEqual(t, time.Since(start), window)
}

func TestAcquireHonorsCancellation(t *testing.T) {
	limiter, err := New(1, time.Hour)
	require.NoError(t, err)
	require.NoError(t, limiter.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = limiter.Acquire(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)
}

func TestPruneDropsOldestFirst(t *testing.T) {
	limiter, err := New(2, 100*time.Millisecond)
	require.NoError(t, err)

	current := time.Unix(1000, 0)
	limiter.now = func() time.Time { return current }

	require.NoError(t, limiter.Acquire(context.Background()))
	require.NoError(t, limiter.Acquire(context.Background()))
	require.Len(t, limiter.history, 2)

	// once the window has passed, both slots free up without waiting
	current = current.Add(200 * time.Millisecond)
	require.NoError(t, limiter.Acquire(context.Background()))
	require.Len(t, limiter.history, 1)
}
