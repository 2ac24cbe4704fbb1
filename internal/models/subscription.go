package models

import "time"

type RepoSubscription struct {
	ID                   uint              `gorm:"primaryKey"`
	Email                string            `gorm:"size:255;not null;uniqueIndex:idx_subscriptions_email_repository"`
	RepositoryID         uint              `gorm:"not null;uniqueIndex:idx_subscriptions_email_repository;index"`
	Repository           TrackedRepository `gorm:"constraint:OnDelete:CASCADE"`
	SubscribedAt         time.Time         `gorm:"not null"`
	NotificationsEnabled bool              `gorm:"not null;default:false"`
	LastNotificationAt   *time.Time
}

func (RepoSubscription) TableName() string {
	return "repo_subscriptions"
}

// NeedsNotification requires the Repository association to be loaded.
func (s *RepoSubscription) NeedsNotification() bool {
	return s.NotificationsEnabled && s.Repository.HasActivitySince(s.LastNotificationAt)
}

func (s *RepoSubscription) MarkNotified(now time.Time) {
	s.LastNotificationAt = &now
}
