package dto

import (
	"time"

	"github.com/google/uuid"
)

type BroadcastRequest struct {
	Target  string     `json:"target" validate:"required,oneof=user patients staff all"`
	UserID  *uuid.UUID `json:"user_id"`
	Title   string     `json:"title" validate:"required,max=255"`
	Message string     `json:"message"`
}

type NotificationResponse struct {
	ID        int       `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type BroadcastResponse struct {
	Recipients int `json:"recipients"`
}
