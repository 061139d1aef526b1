package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type VaccineRepository interface {
	Create(db *gorm.DB, vaccine *entity.Vaccine) error
	FindByID(db *gorm.DB, id int) (*entity.Vaccine, error)
	FindAll(db *gorm.DB) ([]entity.Vaccine, error)
	Update(db *gorm.DB, vaccine *entity.Vaccine) error
	Delete(db *gorm.DB, id int) error
}
