package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus represents the lifecycle of a feedback ticket
type FeedbackStatus string

const (
	FeedbackStatusOpen   FeedbackStatus = "open"
	FeedbackStatusClosed FeedbackStatus = "closed"
)

// Feedback is a ticket submitted by any authenticated user, optionally tied
// to an appointment or a center, with an open/closed lifecycle.
type Feedback struct {
	ID             int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           string         `gorm:"type:varchar(50)" json:"type,omitempty"`
	AppointmentID  *int           `gorm:"index" json:"appointment_id,omitempty"`
	CenterID       *int           `gorm:"index" json:"center_id,omitempty"`
	Rating         int            `gorm:"default:0" json:"rating"`
	Message        string         `gorm:"type:text;not null" json:"message"`
	AttachmentPath string         `gorm:"type:text" json:"attachment_path,omitempty"`
	Status         FeedbackStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	AdminReply     string         `gorm:"type:text" json:"admin_reply,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// IsClosed checks if the ticket has been closed
func (f *Feedback) IsClosed() bool {
	return f.Status == FeedbackStatusClosed
}
