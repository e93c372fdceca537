package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "rate limit", err: fmt.Errorf("status 429: %w", ErrRateLimit), want: true},
		{name: "marked retryable", err: &RetryableError{Err: errors.New("503"), Retryable: true}, want: true},
		{name: "marked permanent", err: &RetryableError{Err: errors.New("404"), Retryable: false}, want: false},
		{name: "malformed", err: fmt.Errorf("%w: bad json", ErrCatalogMalformed), want: false},
		{name: "plain transport error", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	err := NewUserError("No restaurants to choose from", ErrEmptyPool)

	assert.Equal(t, "No restaurants to choose from: "+ErrEmptyPool.Error(), err.Error())
	assert.ErrorIs(t, err, ErrEmptyPool)

	var userErr *UserError
	assert.ErrorAs(t, err, &userErr)
	assert.Equal(t, "No restaurants to choose from", userErr.UserMessage)

	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
