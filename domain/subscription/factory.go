package subscription

import (
	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/domain/tracking"
	"github.com/akeren/email-collector/internal/log"
	"gorm.io/gorm"
)

type SubscriptionServiceFactory interface {
	CreateService() Service
	CreateController() *router.RESTController
}

type DefaultSubscriptionServiceFactory struct {
	db      *gorm.DB
	logger  *log.Logger
	tracker tracking.Service
}

func NewSubscriptionServiceFactory(db *gorm.DB, logger *log.Logger, tracker tracking.Service) SubscriptionServiceFactory {
	return &DefaultSubscriptionServiceFactory{db: db, logger: logger, tracker: tracker}
}

func (f *DefaultSubscriptionServiceFactory) CreateService() Service {
	return NewService(f.logger.WithComponent("subscription"), NewSubscriptionRepository(f.db), f.tracker)
}

func (f *DefaultSubscriptionServiceFactory) CreateController() *router.RESTController {
	return NewSubscriptionController(f.CreateService())
}
