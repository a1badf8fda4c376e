package dto

import (
	"time"

	"onlyfame_backend/internal/models"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
}

func NewNotificationResponses(items []models.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		result = append(result, NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result
}
