package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type statusErr struct{ retry bool }

func (e statusErr) Error() string   { return "status error" }
func (e statusErr) Retryable() bool { return e.retry }

// instant records requested waits instead of sleeping.
func instant(b *ExponentialBackoff) *[]time.Duration {
	var waits []time.Duration
	b.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return &waits
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	b := NewExponentialBackoff(&Config{MaxAttempts: 3, BaseDelay: time.Second, Multiplier: 2})
	waits := instant(b)

	calls := 0
	err := b.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	b := NewExponentialBackoff(&Config{MaxAttempts: 5})
	instant(b)

	calls := 0
	err := b.Do(context.Background(), func(context.Context) error {
		calls++
		return statusErr{retry: false}
	})

	var exhausted *ExhaustedError
	assert.False(t, errors.As(err, &exhausted))
	assert.Equal(t, statusErr{retry: false}, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	b := NewExponentialBackoff(&Config{MaxAttempts: 2})
	instant(b)

	calls := 0
	err := b.Do(context.Background(), func(context.Context) error {
		calls++
		return statusErr{retry: true}
	})

	var exhausted *ExhaustedError
	if assert.ErrorAs(t, err, &exhausted) {
		assert.Equal(t, 2, exhausted.Attempts)
	}
	assert.ErrorIs(t, err, statusErr{retry: true})
	assert.Equal(t, 2, calls)
}

func TestDo_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewExponentialBackoff(&Config{MaxAttempts: 5, BaseDelay: time.Hour})

	calls := 0
	err := b.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("service unavailable")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDelay_IsCapped(t *testing.T) {
	b := NewExponentialBackoff(&Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2})

	assert.Equal(t, time.Second, b.delay(1))
	assert.Equal(t, 2*time.Second, b.delay(2))
	assert.Equal(t, 3*time.Second, b.delay(5))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("i/o timeout")))
	assert.True(t, IsRetryable(statusErr{retry: true}))
	assert.False(t, IsRetryable(errors.New("not found")))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(nil))
}
