package config

import (
	"context"
	"errors"
	"time"

	"github.com/akeren/email-collector/internal/log"
	pkgredis "github.com/akeren/email-collector/pkg/redis"
	"github.com/caarlos0/env/v11"
)

var ErrCacheNotConfigured = errors.New("cache host is not configured")

// Cache is the string cache shared by the GitHub client and the rate
// limiters. The Redis implementation also exposes its client through
// factory.RedisClientProvider.
type Cache interface {
	// Get returns ("", nil) when a key is not found.
	Get(ctx context.Context, key string) (string, error)
	// Set uses ttl=0 for no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type CacheConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// NewCacheConfig reads the Redis settings; a malformed REDIS_DB selects 0.
func NewCacheConfig() *CacheConfig {
	var cc CacheConfig
	if err := env.Parse(&cc); err != nil || cc.DB < 0 {
		cc.DB = 0
	}
	if cc.Port == "" {
		cc.Port = "6379"
	}
	return &cc
}

func (cc *CacheConfig) IsConfigured() bool {
	return cc.Host != ""
}

func (cc *CacheConfig) NewCache(logger *log.Logger) (Cache, error) {
	if !cc.IsConfigured() {
		return nil, ErrCacheNotConfigured
	}

	cfg := &pkgredis.Config{Host: cc.Host, Port: cc.Port, Password: cc.Password, DB: cc.DB}
	cache, err := pkgredis.NewRedisCache(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Cache (Redis) connected", "addr", cfg.Addr(), "db", cfg.DB)
	return cache, nil
}

// NewCacheOrNil degrades to no cache: GitHub responses go uncached and rate
// limits become per instance.
func (cc *CacheConfig) NewCacheOrNil(logger *log.Logger) Cache {
	cache, err := cc.NewCache(logger)
	switch {
	case errors.Is(err, ErrCacheNotConfigured):
		logger.Info("Cache (Redis) is not configured; proceeding without external cache")
		return nil
	case err != nil:
		logger.Warn("Continuing without Redis", "error", err)
		return nil
	}
	return cache
}

func CloseCache(cache Cache, logger *log.Logger) error {
	if cache == nil {
		return nil
	}

	if err := cache.Close(); err != nil {
		logger.Error("Failed to close cache", "error", err)
		return err
	}

	logger.Info("Cache connection closed")
	return nil
}
