package config

import (
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/events"
)

// NewEventPublisher connects to RabbitMQ when AMQP_URL is set. A broker that
// cannot be reached at start-up degrades to the no-op publisher.
func NewEventPublisher(logger *log.Logger, cfg EventsConfig) events.Publisher {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set; domain events are not published")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	if err != nil {
		logger.Error("Failed to connect event publisher; continuing without events", "error", err)
		return events.NoopPublisher{}
	}

	logger.Info("Event publisher connected", "exchange", cfg.Exchange)
	return publisher
}
