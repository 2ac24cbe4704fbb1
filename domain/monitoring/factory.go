package monitoring

import (
	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/factory"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	logger   *log.Logger
	deps     Dependencies
	limiters factory.RateLimiterFactory
}

func NewMonitoringControllerFactory(logger *log.Logger, deps Dependencies, limiters factory.RateLimiterFactory) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		logger:   logger,
		deps:     deps,
		limiters: limiters,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.logger, f.deps, f.limiters)
}
