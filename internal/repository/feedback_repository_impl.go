package repository

import (
	"errors"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindByID(db *gorm.DB, id int) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Where("id = ?", id).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindAll(db *gorm.DB) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := db.Preload("User").Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) Update(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Save(feedback).Error
}

func (r *feedbackRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Feedback{}).Error
}
