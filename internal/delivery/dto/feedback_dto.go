package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	Type          string `json:"type" validate:"omitempty,max=50"`
	AppointmentID *int   `json:"appointment_id" validate:"omitempty,min=1"`
	CenterID      *int   `json:"center_id" validate:"omitempty,min=1"`
	Rating        int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Message       string `json:"message" validate:"required"`
}

type ReplyFeedbackRequest struct {
	Reply string `json:"reply" validate:"required"`
}

type FeedbackResponse struct {
	ID             int       `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Type           string    `json:"type,omitempty"`
	AppointmentID  *int      `json:"appointment_id,omitempty"`
	CenterID       *int      `json:"center_id,omitempty"`
	Rating         int       `json:"rating,omitempty"`
	Message        string    `json:"message"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	Status         string    `json:"status"`
	AdminReply     string    `json:"admin_reply,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
