// Package circuitbreaker stops calling an upstream that keeps failing and
// probes it again after a cool-down.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	Closed CircuitState = iota
	Open
	HalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreaker interface {
	Do(ctx context.Context, fn func(context.Context) error) error
	State() CircuitState
	Counts() Counts
	Reset()
}

type Config struct {
	Name string
	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold int
	// RecoveryTimeout is how long the circuit stays open before a probe.
	RecoveryTimeout time.Duration
	// SuccessThreshold half-open successes close it again.
	SuccessThreshold int

	// IsFailure decides which errors count. Nil counts every error.
	IsFailure func(error) bool

	// OnStateChange runs outside the lock after every transition.
	OnStateChange func(name string, from, to CircuitState)
}

// Counts is a snapshot of the breaker's bookkeeping.
type Counts struct {
	State       CircuitState
	Failures    int
	Successes   int
	LastFailure time.Time
	OpenUntil   time.Time
}

type breaker struct {
	cfg Config
	now func() time.Time

	mu     sync.Mutex
	counts Counts
}

// NewCircuitBreaker fills zero fields of cfg with 5 failures, 60s and 3
// successes.
func NewCircuitBreaker(cfg *Config) CircuitBreaker {
	return newBreaker(cfg, time.Now)
}

func newBreaker(cfg *Config, now func() time.Time) *breaker {
	c := Config{Name: "default", FailureThreshold: 5, RecoveryTimeout: 60 * time.Second, SuccessThreshold: 3}
	if cfg != nil {
		c.IsFailure, c.OnStateChange = cfg.IsFailure, cfg.OnStateChange
		if cfg.Name != "" {
			c.Name = cfg.Name
		}
		if cfg.FailureThreshold > 0 {
			c.FailureThreshold = cfg.FailureThreshold
		}
		if cfg.RecoveryTimeout > 0 {
			c.RecoveryTimeout = cfg.RecoveryTimeout
		}
		if cfg.SuccessThreshold > 0 {
			c.SuccessThreshold = cfg.SuccessThreshold
		}
	}
	return &breaker{cfg: c, now: now}
}

// Do runs fn unless the circuit is open. fn runs without the lock held.
func (b *breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if !b.admit() {
		return ErrCircuitOpen
	}

	err := fn(ctx)
	b.record(err)
	return err
}

func (b *breaker) admit() bool {
	b.mu.Lock()
	from := b.counts.State
	if from == Open && !b.now().Before(b.counts.OpenUntil) {
		b.counts.State = HalfOpen
		b.counts.Successes = 0
	}
	to := b.counts.State
	b.mu.Unlock()

	b.notify(from, to)
	return to != Open
}

func (b *breaker) record(err error) {
	b.mu.Lock()
	from := b.counts.State

	if err != nil && (b.cfg.IsFailure == nil || b.cfg.IsFailure(err)) {
		now := b.now()
		b.counts.Failures++
		b.counts.LastFailure = now
		if from == HalfOpen || b.counts.Failures >= b.cfg.FailureThreshold {
			b.counts.State = Open
			b.counts.OpenUntil = now.Add(b.cfg.RecoveryTimeout)
		}
	} else {
		b.counts.Failures = 0
		if from == HalfOpen {
			b.counts.Successes++
			if b.counts.Successes >= b.cfg.SuccessThreshold {
				b.counts.State = Closed
				b.counts.Successes = 0
			}
		}
	}

	to := b.counts.State
	b.mu.Unlock()
	b.notify(from, to)
}

func (b *breaker) notify(from, to CircuitState) {
	if from != to && b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(b.cfg.Name, from, to)
	}
}

func (b *breaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts.State
}

func (b *breaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts
}

func (b *breaker) Reset() {
	b.mu.Lock()
	from := b.counts.State
	b.counts = Counts{}
	b.mu.Unlock()
	b.notify(from, Closed)
}
