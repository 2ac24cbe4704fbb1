package factory

import (
	"time"

	"github.com/akeren/email-collector/pkg/ratelimit"
	"github.com/go-redis/redis/v8"
)

type RedisClientProvider interface {
	GetClient() *redis.Client
}

type RateLimiterFactory interface {
	// CreateRateLimiter builds a limiter whose Redis keys are scoped by name.
	CreateRateLimiter(name string, requests int, window time.Duration) ratelimit.RateLimiter
}

// DefaultRateLimiterFactory hands out Redis-backed limiters when a Redis client
// is available and in-memory limiters otherwise.
type DefaultRateLimiterFactory struct {
	redis  *redis.Client
	logger ratelimit.Logger
}

// NewRateLimiterFactory accepts any value; it uses Redis only when the value
// exposes a client through RedisClientProvider.
func NewRateLimiterFactory(cache any, logger ratelimit.Logger) *DefaultRateLimiterFactory {
	var client *redis.Client
	if provider, ok := cache.(RedisClientProvider); ok && provider != nil {
		client = provider.GetClient()
	}

	return &DefaultRateLimiterFactory{
		redis:  client,
		logger: logger,
	}
}

func (f *DefaultRateLimiterFactory) CreateRateLimiter(name string, requests int, window time.Duration) ratelimit.RateLimiter {
	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Name:     name,
		Requests: requests,
		Window:   window,
		Redis:    f.redis,
		Logger:   f.logger,
	})
}

func (f *DefaultRateLimiterFactory) UsesRedis() bool {
	return f.redis != nil
}
