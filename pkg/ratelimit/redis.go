package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "ratelimit:"

// slidingWindow trims the sorted set to the window, then admits the request
// only while the count is under the limit. Returns 1 when limited.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
if redis.call('ZCARD', key) >= limit then
	return 1
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window * 2)
return 0
`)

// RedisRateLimiter shares its window across every replica using the same
// Redis. The client belongs to the application config, which closes it.
type RedisRateLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	prefix   string
	logger   Logger
}

func NewRedisRateLimiter(client *redis.Client, requests int, window time.Duration, logger Logger) *RedisRateLimiter {
	return newNamedRedisRateLimiter(client, "", requests, window, logger)
}

// newNamedRedisRateLimiter keys sets as "ratelimit:<name>:<client>" so route
// limiters never share a window with the global one.
func newNamedRedisRateLimiter(client *redis.Client, name string, requests int, window time.Duration, logger Logger) *RedisRateLimiter {
	prefix := keyPrefix
	if name = strings.TrimSpace(name); name != "" {
		prefix += name + ":"
	}

	return &RedisRateLimiter{
		client:   client,
		requests: requests,
		window:   window,
		prefix:   prefix,
		logger:   logger,
	}
}

func (r *RedisRateLimiter) GetLimitDetails() (int, time.Duration) {
	return r.requests, r.window
}

func (r *RedisRateLimiter) IsLimited(key string) (bool, error) {
	fullKey := r.fullKey(key)

	result, err := slidingWindow.Run(context.Background(), r.client, []string{fullKey},
		time.Now().UnixMilli(),
		r.window.Milliseconds(),
		r.requests,
		uuid.NewString(),
	).Int()
	if err != nil {
		if r.logger != nil {
			r.logger.Error("Redis rate limit script failed", "key", fullKey, "error", err)
		}
		return false, fmt.Errorf("rate limiter Redis error: %w", err)
	}

	return result == 1, nil
}

func (r *RedisRateLimiter) fullKey(key string) string {
	return r.prefix + strings.TrimPrefix(key, keyPrefix)
}

func (r *RedisRateLimiter) Close() error {
	return nil
}
