package tracking

import (
	"github.com/akeren/email-collector/internal/log"
	"gorm.io/gorm"
)

type TrackingServiceFactory interface {
	CreateService() Service
}

type DefaultTrackingServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	reader ActivityReader
}

func NewTrackingServiceFactory(db *gorm.DB, logger *log.Logger, reader ActivityReader) TrackingServiceFactory {
	return &DefaultTrackingServiceFactory{db: db, logger: logger, reader: reader}
}

func (f *DefaultTrackingServiceFactory) CreateService() Service {
	return NewService(f.logger.WithComponent("tracking"), NewRepositoryStore(f.db), f.reader)
}
