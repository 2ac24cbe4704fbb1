package notification

import (
	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/events"
	"gorm.io/gorm"
)

type NotificationServiceFactory interface {
	CreateService() Service
	CreateController() *router.RESTController
}

type DefaultNotificationServiceFactory struct {
	db            *gorm.DB
	logger        *log.Logger
	subscriptions SubscriptionMarker
	publisher     events.Publisher
}

func NewNotificationServiceFactory(
	db *gorm.DB,
	logger *log.Logger,
	subscriptions SubscriptionMarker,
	publisher events.Publisher,
) NotificationServiceFactory {
	return &DefaultNotificationServiceFactory{
		db:            db,
		logger:        logger,
		subscriptions: subscriptions,
		publisher:     publisher,
	}
}

func (f *DefaultNotificationServiceFactory) CreateService() Service {
	return NewService(f.logger.WithComponent("notification"), NewNotificationRepository(f.db), f.subscriptions, f.publisher)
}

func (f *DefaultNotificationServiceFactory) CreateController() *router.RESTController {
	return NewNotificationController(f.CreateService())
}
