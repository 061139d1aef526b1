package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	CreateBatch(db *gorm.DB, notifications []entity.Notification) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error)
	CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error)

	// MarkRead flips the read flag only when the notification belongs to the
	// given user; returns the number of rows affected.
	MarkRead(db *gorm.DB, id int, userID uuid.UUID) (int64, error)
}
