package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/akeren/email-collector/domain/subscription"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/events"
	"github.com/akeren/email-collector/pkg/metrics"
)

//go:generate mockgen -destination=mock_service.go -package=notification . Service

// SubscriptionMarker records that a subscriber has been told about the
// latest detected activity.
type SubscriptionMarker interface {
	MarkNotified(ctx context.Context, subscription *models.RepoSubscription) error
}

type Service interface {
	// CreateNotification stores a message for the subscriber and marks the
	// subscription notified.
	CreateNotification(ctx context.Context, sub *models.RepoSubscription, message string) (*models.RepoNotification, error)
	GetUserNotifications(ctx context.Context, email string, page, size int) (*Page, error)
	GetUnreadNotifications(ctx context.Context, email string) ([]NotificationResponse, error)
	CountUnread(ctx context.Context, email string) (int64, error)
	MarkAsRead(ctx context.Context, id uint, email string) (bool, error)
	MarkAllAsRead(ctx context.Context, email string) (int64, error)
	ClearAllNotifications(ctx context.Context, email string) error
}

type service struct {
	logger        *log.Logger
	repository    NotificationRepository
	subscriptions SubscriptionMarker
	publisher     events.Publisher
	now           func() time.Time
}

func NewService(
	logger *log.Logger,
	repository NotificationRepository,
	subscriptions SubscriptionMarker,
	publisher events.Publisher,
) Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &service{
		logger:        logger,
		repository:    repository,
		subscriptions: subscriptions,
		publisher:     publisher,
		now:           time.Now,
	}
}

func (s *service) CreateNotification(ctx context.Context, sub *models.RepoSubscription, message string) (*models.RepoNotification, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if sub == nil {
		return nil, apperrors.NewInvalidRequestError("subscription cannot be nil", nil)
	}

	notification, err := s.repository.Create(ctx, &models.RepoNotification{
		Email:        sub.Email,
		RepositoryID: sub.RepositoryID,
		Message:      message,
		CreatedAt:    s.now(),
	})
	if err != nil {
		logger.Error("Failed to store notification", "error", err)
		return nil, err
	}
	notification.Repository = sub.Repository

	if err := s.subscriptions.MarkNotified(ctx, sub); err != nil {
		logger.Error("Failed to mark subscription notified", "subscription_id", sub.ID, "error", err)
		return nil, err
	}

	metrics.NotificationsCreatedTotal.Inc()
	logger.Info("Notification created",
		"id", notification.ID,
		"email", log.RedactEmail(sub.Email),
		"repository", sub.Repository.FullName(),
	)

	s.publishCreated(ctx, logger, notification)
	return notification, nil
}

func (s *service) publishCreated(ctx context.Context, logger *log.Logger, n *models.RepoNotification) {
	err := s.publisher.Publish(ctx, events.RoutingKeyNotificationCreated, events.NotificationCreated{
		NotificationID: n.ID,
		Email:          n.Email,
		Repository:     n.Repository.FullName(),
		Message:        n.Message,
		OccurredAt:     n.CreatedAt.UTC(),
	})
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(events.RoutingKeyNotificationCreated, "error").Inc()
		logger.Warn("Failed to publish notification created event", "error", err)
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(events.RoutingKeyNotificationCreated, "ok").Inc()
}

func (s *service) GetUserNotifications(ctx context.Context, email string, page, size int) (*Page, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	if page < 0 {
		return nil, apperrors.NewInvalidRequestError("Page must not be negative", nil)
	}
	if size < 1 || size > constants.MaxPageSize {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("Size must be between 1 and %d", constants.MaxPageSize), nil)
	}

	notifications, total, err := s.repository.FindPageByEmail(ctx, email, page*size, size)
	if err != nil {
		logger.Error("Failed to fetch notifications", "error", err)
		return nil, err
	}

	return &Page{
		Content:       toNotificationResponses(notifications),
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
	}, nil
}

func (s *service) GetUnreadNotifications(ctx context.Context, email string) ([]NotificationResponse, error) {
	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repository.FindUnreadByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(notifications), nil
}

func (s *service) CountUnread(ctx context.Context, email string) (int64, error) {
	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return 0, err
	}
	return s.repository.CountUnreadByEmail(ctx, email)
}

func (s *service) MarkAsRead(ctx context.Context, id uint, email string) (bool, error) {
	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return false, err
	}
	return s.repository.MarkRead(ctx, id, email)
}

func (s *service) MarkAllAsRead(ctx context.Context, email string) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return 0, err
	}

	count, err := s.repository.MarkAllRead(ctx, email)
	if err != nil {
		return 0, err
	}

	logger.Info("Notifications marked as read", "email", log.RedactEmail(email), "count", count)
	return count, nil
}

func (s *service) ClearAllNotifications(ctx context.Context, email string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := subscription.ValidateEmail(email)
	if err != nil {
		return err
	}

	removed, err := s.repository.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}

	logger.Info("Notifications cleared", "email", log.RedactEmail(email), "count", removed)
	return nil
}
