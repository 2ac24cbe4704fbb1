package config

import (
	"context"
	"errors"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
	"github.com/akeren/email-collector/pkg/events"
	"github.com/caarlos0/env/v11"
	"gorm.io/gorm"
)

// ApplicationConfig carries the process-wide resources built at start-up.
// Cleanup releases them in reverse order of acquisition.
type ApplicationConfig struct {
	DB            *gorm.DB
	RouterService *router.RouterService
	Logger        *log.Logger
	Cache         Cache
	Config        *AppConfig
	Settings      *Settings
	Events        events.Publisher

	closers []func()
}

// AppConfig holds the global HTTP limits. Values that fail to parse or are
// not positive fall back to the defaults.
type AppConfig struct {
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"`
}

func NewAppConfig() *AppConfig {
	defaults := AppConfig{
		RateLimitRequests: constants.DefaultRateLimitRequests,
		RateLimitWindow:   constants.DefaultRateLimitWindow(),
		RequestTimeout:    30 * time.Second,
	}

	var parsed AppConfig
	if err := env.Parse(&parsed); err != nil {
		return &defaults
	}

	config := defaults
	if parsed.RateLimitRequests > 0 {
		config.RateLimitRequests = parsed.RateLimitRequests
	}
	if parsed.RateLimitWindow > 0 {
		config.RateLimitWindow = parsed.RateLimitWindow
	}
	if parsed.RequestTimeout > 0 {
		config.RequestTimeout = parsed.RequestTimeout
	}
	return &config
}

func (ac *ApplicationConfig) onCleanup(fn func()) {
	ac.closers = append(ac.closers, fn)
}

func (ac *ApplicationConfig) Cleanup() {
	for i := len(ac.closers) - 1; i >= 0; i-- {
		ac.closers[i]()
	}
	ac.closers = nil
	ac.Logger.Info("Application cleanup completed")
}

// LoadApplicationConfiguration wires tracing, the database, the cache, the
// event publisher and the router. On failure everything acquired so far is
// released before the error is returned.
func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; treating --auto-migrate as development")
		}
	}

	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	ac := &ApplicationConfig{Logger: logger, Settings: settings, Config: NewAppConfig()}
	if err := ac.acquire(autoMigrate); err != nil {
		ac.Cleanup()
		return nil, err
	}

	logger.Info("Application configuration loaded")
	return ac, nil
}

func (ac *ApplicationConfig) acquire(autoMigrate bool) error {
	logger := ac.Logger

	shutdownTracing, err := SetupTracing(logger)
	if err != nil {
		return err
	}
	if shutdownTracing != nil {
		ac.onCleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Failed to shut down tracer provider", "error", err)
			}
		})
	}

	dbCfg := &DBConfig{}
	if ac.DB, err = NewDatabase(logger, dbCfg); err != nil {
		return err
	}
	ac.onCleanup(func() { CloseDatabase(ac.DB, logger) })

	// SQLite files are created on first start, so their schema is always
	// brought up to date. Postgres schemas stay under the CLI's control.
	if dbCfg.Driver == DriverSQLite && !autoMigrate {
		logger.Info("SQLite database detected; applying schema automatically")
		autoMigrate = true
	}
	if autoMigrate {
		if err := AutoMigrate(logger, ac.DB, models.ModelRegistry...); err != nil {
			return err
		}
	}

	if ac.Cache = NewCacheConfig().NewCacheOrNil(logger); ac.Cache != nil {
		ac.onCleanup(func() { CloseCache(ac.Cache, logger) })
	}

	ac.Events = NewEventPublisher(logger, ac.Settings.Events)
	ac.onCleanup(func() {
		if err := ac.Events.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	})

	ac.RouterService = router.CreateRouterService(logger, ac.Cache, &router.RouterConfig{
		RateLimitRequests: ac.Config.RateLimitRequests,
		RateLimitWindow:   ac.Config.RateLimitWindow,
		RequestTimeout:    ac.Config.RequestTimeout,
	})
	ac.onCleanup(ac.RouterService.Cleanup)

	return nil
}
