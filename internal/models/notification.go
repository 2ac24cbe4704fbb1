package models

import "time"

type RepoNotification struct {
	ID           uint              `gorm:"primaryKey"`
	Email        string            `gorm:"size:255;not null;index"`
	RepositoryID uint              `gorm:"not null;index"`
	Repository   TrackedRepository `gorm:"constraint:OnDelete:CASCADE"`
	Message      string            `gorm:"size:500;not null"`
	Read         bool              `gorm:"not null;default:false"`
	CreatedAt    time.Time         `gorm:"index"`
}

func (RepoNotification) TableName() string {
	return "repo_notifications"
}
