package subscription

import (
	"time"

	"github.com/akeren/email-collector/internal/models"
)

type SubscriptionResponse struct {
	ID                   uint       `json:"id"`
	Email                string     `json:"email"`
	Repository           string     `json:"repository"`
	Owner                string     `json:"owner"`
	Name                 string     `json:"name"`
	SubscribedAt         time.Time  `json:"subscribed_at"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	LastNotificationAt   *time.Time `json:"last_notification_at,omitempty"`
}

func ToSubscriptionResponse(sub *models.RepoSubscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                   sub.ID,
		Email:                sub.Email,
		Repository:           sub.Repository.FullName(),
		Owner:                sub.Repository.Owner,
		Name:                 sub.Repository.Name,
		SubscribedAt:         sub.SubscribedAt,
		NotificationsEnabled: sub.NotificationsEnabled,
		LastNotificationAt:   sub.LastNotificationAt,
	}
}

func ToSubscriptionResponses(subs []*models.RepoSubscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, ToSubscriptionResponse(sub))
	}
	return out
}
