package common

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

var (
	// ErrRateLimit indicates that the remote end asked us to slow down.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries indicates that all retry attempts have been exhausted.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// WithRetry executes an operation with jittered exponential backoff.
// Errors for which IsRetryable returns false stop the loop immediately.
func WithRetry(ctx context.Context, operation func() error, opts RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = 100 * time.Millisecond
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 5 * time.Second
	}

	err := retry.Do(
		operation,
		retry.Context(ctx),
		retry.Attempts(uint(opts.MaxAttempts)),
		retry.Delay(opts.InitialDelay),
		retry.MaxDelay(opts.MaxDelay),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Operation failed, retrying",
				"attempt", n+1,
				"max_attempts", opts.MaxAttempts,
				"error", err)
		}),
	)
	if err == nil {
		return nil
	}
	if !IsRetryable(err) || ctx.Err() != nil {
		return err
	}
	return errors.Join(ErrMaxRetries, err)
}
