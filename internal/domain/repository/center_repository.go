package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type CenterRepository interface {
	Create(db *gorm.DB, center *entity.Center) error
	FindByID(db *gorm.DB, id int) (*entity.Center, error)
	FindAll(db *gorm.DB) ([]entity.Center, error)
	Update(db *gorm.DB, center *entity.Center) error
	Delete(db *gorm.DB, id int) error
}
