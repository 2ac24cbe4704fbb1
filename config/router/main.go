package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/factory"
	"github.com/akeren/email-collector/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type RouterService struct {
	engine   *gin.Engine
	server   *http.Server
	logger   *log.Logger
	settings HTTPSettings

	defaultLimiter    ratelimit.RateLimiter
	rateLimitRequests int
	rateLimitWindow   time.Duration
	requestTimeout    time.Duration

	handlerToControllerMap map[string]*RESTController
	rateLimitOverrides     map[string]ratelimit.RateLimiter
}

type RouterConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RequestTimeout    time.Duration
}

func CreateRouterService(logger *log.Logger, cache Cache, routerConfig *RouterConfig) *RouterService {
	settings, err := LoadHTTPSettings()
	if err != nil {
		logger.Warn("Invalid HTTP settings in environment, using defaults", "error", err)
	}

	if settings.GinMode != "" {
		logger.Info("Setting Gin mode", "mode", settings.GinMode)
		gin.SetMode(settings.GinMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.HandleMethodNotAllowed = true
	engine.RedirectTrailingSlash = true

	if settings.TracingEnabled {
		engine.Use(otelgin.Middleware(settings.ServiceName))
		logger.Info("Tracing middleware enabled", "service", settings.ServiceName)
	}

	// gin trusts every proxy unless told otherwise.
	proxies := settings.trustedProxies()
	if err := engine.SetTrustedProxies(proxies); err != nil {
		logger.Error("Invalid TRUSTED_PROXIES; disabling trusted proxies", "error", err)
		_ = engine.SetTrustedProxies(nil)
	} else if proxies == nil {
		logger.Info("Trusted proxies disabled (TRUSTED_PROXIES not set)")
	}

	rs := &RouterService{
		engine:            engine,
		logger:            logger,
		settings:          settings,
		rateLimitRequests: routerConfig.RateLimitRequests,
		rateLimitWindow:   routerConfig.RateLimitWindow,
		requestTimeout:    routerConfig.RequestTimeout,

		handlerToControllerMap: make(map[string]*RESTController),
		rateLimitOverrides:     make(map[string]ratelimit.RateLimiter),
	}

	rs.defaultLimiter = rs.newDefaultLimiter(redisClientFrom(cache))

	if settings.MetricsEnabled {
		rs.mountMetrics()
	} else {
		logger.Info("Metrics disabled (METRICS_ENABLED=false)")
	}

	engine.Use(
		rs.securityHeadersMiddleware(),
		rs.maxBodySizeMiddleware(),
		rs.corsMiddleware(),
		rs.rateLimitMiddleware(),
		rs.timeoutMiddleware(),
		rs.correlationIDMiddleware(),
		rs.loggerInjectionMiddleware(),
		rs.requestLoggingMiddleware(),
	)

	engine.NoRoute(rs.fallbackHandler(http.StatusNotFound, "Route not found"))
	engine.NoMethod(rs.fallbackHandler(http.StatusMethodNotAllowed, "Method not allowed"))

	// Handlers run on the request goroutine, so deadlines are enforced here
	// rather than by wrapping the handler chain.
	rs.server = &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       routerConfig.RequestTimeout,
		WriteTimeout:      routerConfig.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Router service initialized")
	return rs
}

func redisClientFrom(cache Cache) *redis.Client {
	if provider, ok := cache.(factory.RedisClientProvider); ok {
		return provider.GetClient()
	}
	return nil
}

// newDefaultLimiter prefers Redis so limits hold across replicas, and falls
// back to the in-memory limiter when Redis is absent or unreachable.
func (routerService *RouterService) newDefaultLimiter(client *redis.Client) ratelimit.RateLimiter {
	if client != nil {
		if err := client.Ping(context.Background()).Err(); err != nil {
			routerService.logger.Warn("Redis unreachable for rate limiting, falling back to in-memory", "error", err)
			client = nil
		}
	}

	backend := "memory"
	if client != nil {
		backend = "redis"
	}
	routerService.logger.Info("Default rate limiter initialized",
		"backend", backend,
		"requests", routerService.rateLimitRequests,
		"window", routerService.rateLimitWindow,
	)

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: routerService.rateLimitRequests,
		Window:   routerService.rateLimitWindow,
		Redis:    client,
		Logger:   routerService.logger,
	})
}

func (routerService *RouterService) fallbackHandler(status int, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		routerService.logger.WithCorrelationID(c.Request.Context()).Warn(message,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.JSON(status, ErrorResult(status, message, nil).ToJSON())
	}
}

func (routerService *RouterService) GetDefaultRateLimitConfig() (int, time.Duration) {
	return routerService.rateLimitRequests, routerService.rateLimitWindow
}

func (routerService *RouterService) GetEngine() *gin.Engine {
	return routerService.engine
}

func (routerService *RouterService) GetLogger(c *RequestContext) *log.Logger {
	return routerService.logger.WithCorrelationID(c.Request.Context())
}

func (routerService *RouterService) Cleanup() {
	if routerService.defaultLimiter != nil {
		if err := routerService.defaultLimiter.Close(); err != nil {
			routerService.logger.Error("Failed to close rate limiter", "error", err)
		}
	}
	routerService.logger.Info("Router service cleanup completed")
}

func (routerService *RouterService) MountController(controller *RESTController) {
	controller.prepare(routerService, controller)

	routerService.logger.Info("Controller mounted",
		"name", controller.name,
		"path", controller.mountPoint,
		"handlers", controller.handlerCount,
	)
}

func (routerService *RouterService) RunHTTPServer() error {
	routerService.logger.Info("Starting HTTP server", "addr", routerService.server.Addr)

	if err := routerService.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		routerService.logger.Error("HTTP server stopped unexpectedly", "error", err)
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

func (routerService *RouterService) Shutdown(ctx context.Context) error {
	routerService.logger.Info("Shutting down HTTP server")
	return routerService.server.Shutdown(ctx)
}
