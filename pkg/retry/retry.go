// Package retry re-runs idempotent upstream calls with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type RetryPolicy interface {
	Do(ctx context.Context, fn func(context.Context) error) error
}

// Retryable lets an error decide whether another attempt makes sense.
// Other errors are classified by their message.
type Retryable interface {
	Retryable() bool
}

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
}

var transientMessages = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"temporary failure",
	"service unavailable",
	"too many requests",
	"bad gateway",
}

// ExhaustedError is returned once every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

type ExponentialBackoff struct {
	cfg   Config
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExponentialBackoff fills zero fields of cfg with 3 attempts starting at
// 100ms, doubling up to 30s.
func NewExponentialBackoff(cfg *Config) *ExponentialBackoff {
	c := Config{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: 30 * time.Second, Multiplier: 2}
	if cfg != nil {
		if cfg.MaxAttempts > 0 {
			c.MaxAttempts = cfg.MaxAttempts
		}
		if cfg.BaseDelay > 0 {
			c.BaseDelay = cfg.BaseDelay
		}
		if cfg.MaxDelay > 0 {
			c.MaxDelay = cfg.MaxDelay
		}
		if cfg.Multiplier >= 1 {
			c.Multiplier = cfg.Multiplier
		}
	}
	return &ExponentialBackoff{cfg: c, sleep: sleepContext}
}

// Do stops early on a permanent error or when ctx ends; in the latter case
// the context error is joined with the last failure.
func (b *ExponentialBackoff) Do(ctx context.Context, fn func(context.Context) error) error {
	var last error

	for attempt := 1; attempt <= b.cfg.MaxAttempts; attempt++ {
		if last != nil {
			if err := b.sleep(ctx, b.delay(attempt-1)); err != nil {
				return errors.Join(err, last)
			}
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(err, last)
		}

		last = fn(ctx)
		if last == nil {
			return nil
		}
		if !IsRetryable(last) {
			return last
		}
	}

	return &ExhaustedError{Attempts: b.cfg.MaxAttempts, Last: last}
}

// delay is the wait after the given failed attempt, starting at 1.
func (b *ExponentialBackoff) delay(attempt int) time.Duration {
	d := float64(b.cfg.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= b.cfg.Multiplier
		if d >= float64(b.cfg.MaxDelay) {
			return b.cfg.MaxDelay
		}
	}
	return time.Duration(d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var r Retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientMessages {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
