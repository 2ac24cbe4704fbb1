package models

import "time"

// TrackedRepository is a GitHub repository that has at least one subscriber.
type TrackedRepository struct {
	ID             uint   `gorm:"primaryKey"`
	Owner          string `gorm:"size:100;not null;uniqueIndex:idx_repositories_owner_name"`
	Name           string `gorm:"size:100;not null;uniqueIndex:idx_repositories_owner_name"`
	LastCheckedAt  *time.Time
	LastActivityAt *time.Time
	LastDetectedAt *time.Time
	ActivityCount  int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TrackedRepository) TableName() string {
	return "repositories"
}

func (r *TrackedRepository) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r *TrackedRepository) MarkChecked(now time.Time) {
	r.LastCheckedAt = &now
}

// MarkActivity records that activity newer than anything seen before was found.
// latest is the timestamp reported by GitHub, now is the local detection time.
func (r *TrackedRepository) MarkActivity(latest, now time.Time) {
	r.LastActivityAt = &latest
	r.LastDetectedAt = &now
	r.ActivityCount++
}

func (r *TrackedRepository) HasActivitySince(since *time.Time) bool {
	if r.LastDetectedAt == nil {
		return false
	}
	if since == nil {
		return true
	}
	return r.LastDetectedAt.After(*since)
}
