package mq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Exhausted(t *testing.T) {
	unbounded := RetryPolicy{Delay: time.Second}
	assert.True(t, unbounded.Unbounded())
	assert.False(t, unbounded.Exhausted(1_000_000))

	bounded := RetryPolicy{MaxAttempts: 3, Delay: time.Second}
	assert.False(t, bounded.Unbounded())
	assert.False(t, bounded.Exhausted(2))
	assert.True(t, bounded.Exhausted(3))
}

func TestRetryPolicy_Do_SucceedsAfterFailures(t *testing.T) {
	rec := &sleepRecorder{}
	policy := RetryPolicy{Delay: 5 * time.Second}

	calls := 0
	err := policy.Do(context.Background(), rec.sleep, func(attempt int) error {
		calls++
		assert.Equal(t, calls, attempt)
		if attempt <= 4 {
			return errors.New("broker down")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5, calls)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second, 5 * time.Second, 5 * time.Second}, rec.delays)
}

func TestRetryPolicy_Do_BoundedReturnsLastError(t *testing.T) {
	rec := &sleepRecorder{}
	policy := RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second}

	lastErr := errors.New("attempt 3")
	calls := 0
	err := policy.Do(context.Background(), rec.sleep, func(attempt int) error {
		calls++
		if attempt == 3 {
			return lastErr
		}
		return errors.New("earlier")
	})

	require.ErrorIs(t, err, lastErr)
	assert.Equal(t, 3, calls)
	// Пауза только между попытками
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, rec.delays)
}

func TestRetryPolicy_Do_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := RetryPolicy{Delay: time.Second}.Do(ctx, func(ctx context.Context, _ time.Duration) bool {
		cancel()
		return false
	}, func(int) error {
		calls++
		return errors.New("fail")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_Do_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := RetryPolicy{}.Do(ctx, nil, func(int) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSleepContext(t *testing.T) {
	assert.True(t, SleepContext(context.Background(), time.Millisecond))
	assert.True(t, SleepContext(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, SleepContext(ctx, time.Hour))
	assert.False(t, SleepContext(ctx, 0))
}
