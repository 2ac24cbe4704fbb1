package subscription

import (
	"context"
	"errors"

	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository.go -package=subscription . SubscriptionRepository

// SubscriptionRepository loads subscriptions with their Repository association.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.RepoSubscription) (*models.RepoSubscription, error)
	FindByEmailAndRepository(ctx context.Context, email string, repositoryID uint) (*models.RepoSubscription, error)
	// DeleteByEmailAndRepository reports whether a row was removed.
	DeleteByEmailAndRepository(ctx context.Context, email string, repositoryID uint) (bool, error)
	FindByEmail(ctx context.Context, email string) ([]*models.RepoSubscription, error)
	FindByRepository(ctx context.Context, repositoryID uint) ([]*models.RepoSubscription, error)
	FindNotificationsEnabled(ctx context.Context) ([]*models.RepoSubscription, error)
	Save(ctx context.Context, subscription *models.RepoSubscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (sr *subscriptionRepository) Create(ctx context.Context, subscription *models.RepoSubscription) (*models.RepoSubscription, error) {
	if err := sr.db.WithContext(ctx).Omit("Repository").Create(subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictError("subscription already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to store subscription", err)
	}

	return subscription, nil
}

func (sr *subscriptionRepository) FindByEmailAndRepository(ctx context.Context, email string, repositoryID uint) (*models.RepoSubscription, error) {
	var subscription models.RepoSubscription

	err := sr.db.WithContext(ctx).
		Preload("Repository").
		Where("email = ? AND repository_id = ?", email, repositoryID).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch subscription", err)
	}

	return &subscription, nil
}

func (sr *subscriptionRepository) DeleteByEmailAndRepository(ctx context.Context, email string, repositoryID uint) (bool, error) {
	result := sr.db.WithContext(ctx).
		Where("email = ? AND repository_id = ?", email, repositoryID).
		Delete(&models.RepoSubscription{})
	if result.Error != nil {
		return false, apperrors.NewDatabaseError("unable to delete subscription", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (sr *subscriptionRepository) FindByEmail(ctx context.Context, email string) ([]*models.RepoSubscription, error) {
	return sr.find(ctx, "unable to fetch user subscriptions", "email = ?", email)
}

func (sr *subscriptionRepository) FindByRepository(ctx context.Context, repositoryID uint) ([]*models.RepoSubscription, error) {
	return sr.find(ctx, "unable to fetch repository subscriptions", "repository_id = ?", repositoryID)
}

func (sr *subscriptionRepository) FindNotificationsEnabled(ctx context.Context) ([]*models.RepoSubscription, error) {
	return sr.find(ctx, "unable to fetch notification subscriptions", "notifications_enabled = ?", true)
}

func (sr *subscriptionRepository) find(ctx context.Context, failure string, query string, args ...any) ([]*models.RepoSubscription, error) {
	var subscriptions []*models.RepoSubscription

	err := sr.db.WithContext(ctx).
		Preload("Repository").
		Where(query, args...).
		Order("id ASC").
		Find(&subscriptions).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(failure, err)
	}

	return subscriptions, nil
}

func (sr *subscriptionRepository) Save(ctx context.Context, subscription *models.RepoSubscription) error {
	if err := sr.db.WithContext(ctx).Omit("Repository").Save(subscription).Error; err != nil {
		return apperrors.NewDatabaseError("unable to update subscription", err)
	}
	return nil
}
