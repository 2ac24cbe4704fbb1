package github

import (
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/factory"
)

type GitHubServiceFactory interface {
	CreateService() Service
	CreateController() *router.RESTController
}

type DefaultGitHubServiceFactory struct {
	logger   *log.Logger
	client   Client
	cache    Cache
	cacheTTL time.Duration
	limiters factory.RateLimiterFactory
}

func NewGitHubServiceFactory(
	logger *log.Logger,
	client Client,
	cache Cache,
	cacheTTL time.Duration,
	limiters factory.RateLimiterFactory,
) GitHubServiceFactory {
	return &DefaultGitHubServiceFactory{
		logger:   logger,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		limiters: limiters,
	}
}

func (f *DefaultGitHubServiceFactory) CreateService() Service {
	return NewService(f.logger.WithComponent("github"), f.client, f.cache, f.cacheTTL)
}

func (f *DefaultGitHubServiceFactory) CreateController() *router.RESTController {
	return NewGitHubController(f.CreateService(), f.limiters)
}
