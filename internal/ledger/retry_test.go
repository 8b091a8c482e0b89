package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(slept *[]time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     time.Second,
		Sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
	}
}

func TestRetryStopsOnFirstSuccess(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy(&slept).Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, slept)
}

func TestRetryRecoversMidway(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy(&slept).Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{time.Second}, slept)
}

func TestRetryReturnsLastError(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy(&slept).Do(context.Background(), func() error {
		calls++
		return errors.New("attempt " + string(rune('0'+calls)))
	})

	require.Error(t, err)
	assert.EqualError(t, err, "attempt 3")
	assert.Equal(t, 3, calls)
	// Пауза между попытками, но не после последней
	assert.Len(t, slept, 2)
}

func TestRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	var slept []time.Duration
	err := testPolicy(&slept).Do(ctx, func() error {
		calls++
		return errors.New("never retried")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
