package repository

import (
	"errors"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type centerRepository struct{}

func NewCenterRepository() domainRepo.CenterRepository {
	return &centerRepository{}
}

func (r *centerRepository) Create(db *gorm.DB, center *entity.Center) error {
	return db.Create(center).Error
}

func (r *centerRepository) FindByID(db *gorm.DB, id int) (*entity.Center, error) {
	var center entity.Center
	err := db.Where("id = ?", id).First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *centerRepository) FindAll(db *gorm.DB) ([]entity.Center, error) {
	var centers []entity.Center
	err := db.Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *centerRepository) Update(db *gorm.DB, center *entity.Center) error {
	return db.Save(center).Error
}

func (r *centerRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Center{}).Error
}
