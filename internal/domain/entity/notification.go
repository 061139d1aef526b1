package entity

import (
	"time"

	"github.com/google/uuid"
)

// Broadcast audiences accepted by the notification broadcast endpoint
const (
	BroadcastTargetUser     = "user"
	BroadcastTargetPatients = "patients"
	BroadcastTargetStaff    = "staff"
	BroadcastTargetAll      = "all"
)

// Notification is a per-user message with a read flag
type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
