package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/akeren/email-collector/domain/tracking"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
)

//go:generate mockgen -destination=mock_service.go -package=subscription . Service

type Service interface {
	Subscribe(ctx context.Context, email, owner, repo string) (*models.RepoSubscription, error)
	Unsubscribe(ctx context.Context, email, owner, repo string) error
	GetUserSubscriptions(ctx context.Context, email string) ([]*models.RepoSubscription, error)
	// GetRepositorySubscriptions returns an empty list for repositories nobody tracks.
	GetRepositorySubscriptions(ctx context.Context, owner, repo string) ([]*models.RepoSubscription, error)
	UpdateNotificationStatus(ctx context.Context, email, owner, repo string, enabled bool) (*models.RepoSubscription, error)
	GetSubscriptionsNeedingNotification(ctx context.Context) ([]*models.RepoSubscription, error)
	NotificationEnabledSubscriptions(ctx context.Context) ([]*models.RepoSubscription, error)
	MarkNotified(ctx context.Context, subscription *models.RepoSubscription) error
}

type service struct {
	logger     *log.Logger
	repository SubscriptionRepository
	tracker    tracking.Service
	now        func() time.Time
}

func NewService(logger *log.Logger, repository SubscriptionRepository, tracker tracking.Service) Service {
	return &service{
		logger:     logger,
		repository: repository,
		tracker:    tracker,
		now:        time.Now,
	}
}

func (s *service) Subscribe(ctx context.Context, email, owner, repo string) (*models.RepoSubscription, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	repository, err := s.tracker.GetOrCreateRepository(ctx, owner, repo)
	if err != nil {
		switch apperrors.GetErrorType(err) {
		case apperrors.ErrorTypeInvalidRequest, apperrors.ErrorTypeNotFound:
			logger.Info("Subscription to invalid repository", "repository", owner+"/"+repo)
			return nil, apperrors.NewConflictError(fmt.Sprintf("Invalid repository: %s/%s", owner, repo), err)
		default:
			return nil, err
		}
	}

	_, err = s.repository.FindByEmailAndRepository(ctx, email, repository.ID)
	if err == nil {
		return nil, alreadySubscribed(repository)
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		logger.Error("Failed to look up subscription", "error", err)
		return nil, err
	}

	subscription, err := s.repository.Create(ctx, &models.RepoSubscription{
		Email:        email,
		RepositoryID: repository.ID,
		SubscribedAt: s.now(),
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			return nil, alreadySubscribed(repository)
		}
		logger.Error("Failed to store subscription", "error", err)
		return nil, err
	}
	subscription.Repository = *repository

	logger.Info("Subscribed to repository", "email", log.RedactEmail(email), "repository", repository.FullName())
	return subscription, nil
}

func alreadySubscribed(repository *models.TrackedRepository) error {
	return apperrors.NewConflictError("Already subscribed to "+repository.FullName(), nil)
}

func notSubscribed(owner, repo string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Not subscribed to %s/%s", owner, repo), nil)
}

// trackedRepository treats an untracked repository as "no subscription" so
// read and delete paths never create rows or call GitHub.
func (s *service) trackedRepository(ctx context.Context, owner, repo string) (*models.TrackedRepository, bool, error) {
	repository, err := s.tracker.FindRepository(ctx, owner, repo)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return repository, true, nil
}

func (s *service) Unsubscribe(ctx context.Context, email, owner, repo string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := ValidateEmail(email)
	if err != nil {
		return err
	}

	repository, tracked, err := s.trackedRepository(ctx, owner, repo)
	if err != nil {
		return err
	}
	if !tracked {
		return notSubscribed(owner, repo)
	}

	deleted, err := s.repository.DeleteByEmailAndRepository(ctx, email, repository.ID)
	if err != nil {
		logger.Error("Failed to delete subscription", "error", err)
		return err
	}
	if !deleted {
		return notSubscribed(owner, repo)
	}

	logger.Info("Unsubscribed from repository", "email", log.RedactEmail(email), "repository", repository.FullName())
	return nil
}

func (s *service) GetUserSubscriptions(ctx context.Context, email string) ([]*models.RepoSubscription, error) {
	email, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repository.FindByEmail(ctx, email)
}

func (s *service) GetRepositorySubscriptions(ctx context.Context, owner, repo string) ([]*models.RepoSubscription, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	repository, tracked, err := s.trackedRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	if !tracked {
		logger.Debug("No subscriptions for untracked repository", "repository", owner+"/"+repo)
		return []*models.RepoSubscription{}, nil
	}

	return s.repository.FindByRepository(ctx, repository.ID)
}

func (s *service) UpdateNotificationStatus(ctx context.Context, email, owner, repo string, enabled bool) (*models.RepoSubscription, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	repository, tracked, err := s.trackedRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	if !tracked {
		return nil, noSubscription(owner, repo)
	}

	subscription, err := s.repository.FindByEmailAndRepository(ctx, email, repository.ID)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, noSubscription(owner, repo)
		}
		return nil, err
	}

	subscription.NotificationsEnabled = enabled
	if enabled {
		subscription.LastNotificationAt = nil
	}

	if err := s.repository.Save(ctx, subscription); err != nil {
		logger.Error("Failed to update subscription", "error", err)
		return nil, err
	}

	logger.Info("Notification status updated",
		"email", log.RedactEmail(email),
		"repository", repository.FullName(),
		"enabled", enabled,
	)
	return subscription, nil
}

func noSubscription(owner, repo string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("No subscription found for %s/%s", owner, repo), nil)
}

func (s *service) GetSubscriptionsNeedingNotification(ctx context.Context) ([]*models.RepoSubscription, error) {
	subscriptions, err := s.repository.FindNotificationsEnabled(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*models.RepoSubscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if sub.NeedsNotification() {
			pending = append(pending, sub)
		}
	}
	return pending, nil
}

func (s *service) NotificationEnabledSubscriptions(ctx context.Context) ([]*models.RepoSubscription, error) {
	return s.repository.FindNotificationsEnabled(ctx)
}

func (s *service) MarkNotified(ctx context.Context, subscription *models.RepoSubscription) error {
	subscription.MarkNotified(s.now())
	return s.repository.Save(ctx, subscription)
}
