package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindByID(db *gorm.DB, id int) (*entity.Feedback, error)
	FindAll(db *gorm.DB) ([]entity.Feedback, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Feedback, error)
	Update(db *gorm.DB, feedback *entity.Feedback) error
	Delete(db *gorm.DB, id int) error
}
