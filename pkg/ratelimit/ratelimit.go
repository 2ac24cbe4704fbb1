// Package ratelimit holds the per-client limiters used by the router: an
// in-process token bucket and a Redis sliding window shared by replicas.
package ratelimit

import (
	"time"

	"github.com/go-redis/redis/v8"
)

type Logger interface {
	Error(msg string, args ...interface{})
}

type RateLimiter interface {
	GetLimitDetails() (int, time.Duration)
	IsLimited(key string) (bool, error)
	Close() error
}

type RateLimitConfig struct {
	// Name scopes Redis keys; empty means the shared global limiter.
	Name     string
	Requests int
	Window   time.Duration
	// Redis is optional. Without it the limiter is in-memory.
	Redis  *redis.Client
	Logger Logger
}

func NewRateLimiter(config *RateLimitConfig) RateLimiter {
	if config.Redis != nil {
		return newNamedRedisRateLimiter(config.Redis, config.Name, config.Requests, config.Window, config.Logger)
	}
	return NewInMemoryRateLimiter(config.Requests, config.Window)
}
