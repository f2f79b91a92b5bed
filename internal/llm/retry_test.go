package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&googleapi.Error{Code: 500}))
	assert.True(t, retryable(&googleapi.Error{Code: 503}))
	assert.False(t, retryable(&googleapi.Error{Code: 400}))
	assert.False(t, retryable(&googleapi.Error{Code: 429}))
	assert.True(t, retryable(errors.New("connection reset")))
}

func TestWithRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0

	err := WithRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RecoversAfterFailure(t *testing.T) {
	calls := 0

	err := WithRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &googleapi.Error{Code: 503}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	failure := &googleapi.Error{Code: 500}

	err := WithRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, failure)
}

func TestWithRetry_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	failure := &googleapi.Error{Code: 400, Message: "bad request"}

	err := WithRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetry(ctx, 3, time.Millisecond, func() error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := WithRetry(ctx, 3, time.Hour, func() error {
		calls++
		cancel()
		return &googleapi.Error{Code: 500}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0

	err := WithRetry(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
