package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/circuitbreaker"
	"github.com/akeren/email-collector/pkg/constants"
	"github.com/akeren/email-collector/pkg/factory"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type Cache interface {
	Ping(ctx context.Context) error
}

// Broker reports whether the event publisher holds a live connection.
type Broker interface {
	IsConnected() bool
}

// Breaker exposes the state of the GitHub circuit breaker.
type Breaker interface {
	BreakerState() circuitbreaker.CircuitState
}

// HealthStatus uses 1 for healthy and 0 for unhealthy or not configured.
type HealthStatus struct {
	Database     int    `json:"database"`
	Cache        int    `json:"cache"`
	MessageQueue int    `json:"message_queue"`
	GitHub       string `json:"github"`
	Uptime       int    `json:"uptime"`
}

// Dependencies groups the optional collaborators probed by /health. Nil
// fields are reported as not configured.
type Dependencies struct {
	DB      *gorm.DB
	Cache   Cache
	Broker  Broker
	Breaker Breaker
}

type MonitoringController struct {
	deps      Dependencies
	startTime time.Time
}

func NewMonitoringController(logger *log.Logger, deps Dependencies, limiters factory.RateLimiterFactory) *router.RESTController {
	ctrl := &MonitoringController{deps: deps, startTime: time.Now()}
	logger.Debug("Monitoring controller created", "cache", deps.Cache != nil, "broker", deps.Broker != nil)

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := limiters.CreateRateLimiter("monitoring", constants.MonitoringRequestsPerMinute, time.Minute)
			rs.AddGetHandler(c, limiter, "health", ctrl.healthCheck)
		},
	)
}

func (ctrl *MonitoringController) healthCheck(c *router.RequestContext) *router.ServiceResult {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	return &router.ServiceResult{
		StatusCode: http.StatusOK,
		Data:       ctrl.probe(ctx, router.GetLogger(c)),
		Message:    constants.ServiceName + " health check completed",
	}
}

// probe pings the database and cache concurrently; the broker and breaker
// report in-memory state.
func (ctrl *MonitoringController) probe(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
		GitHub: "unknown",
	}

	var g errgroup.Group
	g.Go(func() error {
		status.Database = up(ctrl.pingDatabase(ctx))
		if status.Database == 0 {
			logger.Error("Database health check failed")
		}
		return nil
	})
	if ctrl.deps.Cache != nil {
		g.Go(func() error {
			err := ctrl.deps.Cache.Ping(ctx)
			status.Cache = up(err)
			if err != nil {
				logger.Error("Cache health check failed", "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if ctrl.deps.Broker != nil && ctrl.deps.Broker.IsConnected() {
		status.MessageQueue = 1
	}

	if ctrl.deps.Breaker != nil {
		state := ctrl.deps.Breaker.BreakerState()
		status.GitHub = state.String()
		if state != circuitbreaker.Closed {
			logger.Warn("GitHub circuit breaker is not closed", "state", status.GitHub)
		}
	}

	return status
}

func (ctrl *MonitoringController) pingDatabase(ctx context.Context) error {
	if ctrl.deps.DB == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := ctrl.deps.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func up(err error) int {
	if err != nil {
		return 0
	}
	return 1
}
