package repository

import (
	"errors"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type vaccineRepository struct{}

func NewVaccineRepository() domainRepo.VaccineRepository {
	return &vaccineRepository{}
}

func (r *vaccineRepository) Create(db *gorm.DB, vaccine *entity.Vaccine) error {
	return db.Create(vaccine).Error
}

func (r *vaccineRepository) FindByID(db *gorm.DB, id int) (*entity.Vaccine, error) {
	var vaccine entity.Vaccine
	err := db.Where("id = ?", id).First(&vaccine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccine, nil
}

func (r *vaccineRepository) FindAll(db *gorm.DB) ([]entity.Vaccine, error) {
	var vaccines []entity.Vaccine
	err := db.Find(&vaccines).Error
	if err != nil {
		return nil, err
	}
	return vaccines, nil
}

func (r *vaccineRepository) Update(db *gorm.DB, vaccine *entity.Vaccine) error {
	return db.Save(vaccine).Error
}

func (r *vaccineRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Vaccine{}).Error
}
