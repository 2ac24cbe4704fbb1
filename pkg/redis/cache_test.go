package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Addr(t *testing.T) {
	assert.Equal(t, "localhost:6379", (&Config{Host: "localhost", Port: "6379"}).Addr())
	assert.Equal(t, "[::1]:6380", (&Config{Host: "::1", Port: "6380"}).Addr())
}

func TestNewRedisCache_RequiresHost(t *testing.T) {
	_, err := NewRedisCache(&Config{})
	require.Error(t, err)

	_, err = NewRedisCache(nil)
	require.Error(t, err)
}

func TestRedisCache_UnreachableServerReturnsErrors(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	cache := NewRedisCacheFromClient(client)
	defer cache.Close()

	ctx := context.Background()

	_, err := cache.Get(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, cache.Set(ctx, "key", "value", time.Minute))
	assert.Error(t, cache.Ping(ctx))
	assert.Same(t, client, cache.GetClient())
}
