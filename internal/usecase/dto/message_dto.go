package dto

import "github.com/fleet-backend/internal/domain"

// SendMessageRequest - сообщение диспетчера водителю
type SendMessageRequest struct {
	DriverID int64  `json:"driver_id" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// MessagesResponse - выдача fetchUnread
type MessagesResponse struct {
	Messages []domain.Message `json:"messages"`
	Total    int              `json:"total"`
}
