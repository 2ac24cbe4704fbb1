package submission

import (
	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/events"
	"github.com/akeren/email-collector/pkg/factory"
	"gorm.io/gorm"
)

type SubmissionServiceFactory interface {
	CreateService() SubmissionService
	CreateController() *router.RESTController
}

type DefaultSubmissionServiceFactory struct {
	db          *gorm.DB
	logger      *log.Logger
	publisher   events.Publisher
	limiters    factory.RateLimiterFactory
	adminSecret string
}

func NewSubmissionServiceFactory(
	db *gorm.DB,
	logger *log.Logger,
	publisher events.Publisher,
	limiters factory.RateLimiterFactory,
	adminSecret string,
) SubmissionServiceFactory {
	return &DefaultSubmissionServiceFactory{
		db:          db,
		logger:      logger,
		publisher:   publisher,
		limiters:    limiters,
		adminSecret: adminSecret,
	}
}

func (f *DefaultSubmissionServiceFactory) CreateService() SubmissionService {
	repository := NewSubmissionRepository(f.db)
	return NewSubmissionService(f.logger.WithComponent("submission"), repository, f.publisher)
}

func (f *DefaultSubmissionServiceFactory) CreateController() *router.RESTController {
	return NewSubmissionController(f.CreateService(), f.limiters, f.adminSecret)
}
