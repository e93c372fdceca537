package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts int) RetryOptions {
	return RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &RetryableError{Err: errors.New("503"), Retryable: true}
			}
			return nil
		}, fastRetry(5))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := &RetryableError{Err: errors.New("404"), Retryable: false}
		err := WithRetry(context.Background(), func() error {
			calls++
			return permanent
		}, fastRetry(5))

		assert.ErrorIs(t, err, permanent)
		assert.NotErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return ErrRateLimit
		}, fastRetry(3))

		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, ErrRateLimit)
		assert.Equal(t, 3, calls)
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WithRetry(ctx, func() error {
			return errors.New("unreachable")
		}, fastRetry(3))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMaxRetries)
	})
}
