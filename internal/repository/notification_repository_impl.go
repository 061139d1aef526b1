package repository

import (
	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) CreateBatch(db *gorm.DB, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return db.Create(&notifications).Error
}

func (r *notificationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(db *gorm.DB, id int, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
