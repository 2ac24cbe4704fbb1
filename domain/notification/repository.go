package notification

import (
	"context"

	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository.go -package=notification . NotificationRepository

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.RepoNotification) (*models.RepoNotification, error)
	// FindPageByEmail returns one page, newest first, and the total row count.
	FindPageByEmail(ctx context.Context, email string, offset, limit int) ([]*models.RepoNotification, int64, error)
	FindUnreadByEmail(ctx context.Context, email string) ([]*models.RepoNotification, error)
	CountUnreadByEmail(ctx context.Context, email string) (int64, error)
	// MarkRead reports whether a notification with that id belongs to email.
	MarkRead(ctx context.Context, id uint, email string) (bool, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (nr *notificationRepository) Create(ctx context.Context, notification *models.RepoNotification) (*models.RepoNotification, error) {
	if err := nr.db.WithContext(ctx).Omit("Repository").Create(notification).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to store notification", err)
	}
	return notification, nil
}

func (nr *notificationRepository) FindPageByEmail(ctx context.Context, email string, offset, limit int) ([]*models.RepoNotification, int64, error) {
	var (
		total         int64
		notifications []*models.RepoNotification
	)

	db := nr.db.WithContext(ctx)

	if err := db.Model(&models.RepoNotification{}).Where("email = ?", email).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to count notifications", err)
	}

	err := db.Preload("Repository").
		Where("email = ?", email).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch notifications", err)
	}

	return notifications, total, nil
}

func (nr *notificationRepository) FindUnreadByEmail(ctx context.Context, email string) ([]*models.RepoNotification, error) {
	var notifications []*models.RepoNotification

	err := nr.db.WithContext(ctx).
		Preload("Repository").
		Where("email = ? AND read = ?", email, false).
		Order("created_at DESC").Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch unread notifications", err)
	}

	return notifications, nil
}

func (nr *notificationRepository) CountUnreadByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	err := nr.db.WithContext(ctx).
		Model(&models.RepoNotification{}).
		Where("email = ? AND read = ?", email, false).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("unable to count unread notifications", err)
	}

	return count, nil
}

func (nr *notificationRepository) MarkRead(ctx context.Context, id uint, email string) (bool, error) {
	result := nr.db.WithContext(ctx).
		Model(&models.RepoNotification{}).
		Where("id = ? AND email = ?", id, email).
		Update("read", true)
	if result.Error != nil {
		return false, apperrors.NewDatabaseError("unable to update notification", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (nr *notificationRepository) MarkAllRead(ctx context.Context, email string) (int64, error) {
	result := nr.db.WithContext(ctx).
		Model(&models.RepoNotification{}).
		Where("email = ? AND read = ?", email, false).
		Update("read", true)
	if result.Error != nil {
		return 0, apperrors.NewDatabaseError("unable to update notifications", result.Error)
	}

	return result.RowsAffected, nil
}

func (nr *notificationRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := nr.db.WithContext(ctx).Where("email = ?", email).Delete(&models.RepoNotification{})
	if result.Error != nil {
		return 0, apperrors.NewDatabaseError("unable to delete notifications", result.Error)
	}

	return result.RowsAffected, nil
}
