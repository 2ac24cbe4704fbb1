package notification

import (
	"time"

	"github.com/akeren/email-collector/internal/models"
)

type NotificationResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Repository string    `json:"repository"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Page mirrors the paging envelope clients already consume.
type Page struct {
	Content       []NotificationResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"total_elements"`
	TotalPages    int                    `json:"total_pages"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkAllResponse struct {
	MarkedAsRead int64 `json:"marked_as_read"`
}

func ToNotificationResponse(n *models.RepoNotification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Email:      n.Email,
		Repository: n.Repository.FullName(),
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

func toNotificationResponses(in []*models.RepoNotification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(in))
	for _, n := range in {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
