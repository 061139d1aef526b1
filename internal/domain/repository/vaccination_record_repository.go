package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type VaccinationRecordRepository interface {
	Create(db *gorm.DB, record *entity.VaccinationRecord) error
	FindByID(db *gorm.DB, id int) (*entity.VaccinationRecord, error)
	FindAll(db *gorm.DB) ([]entity.VaccinationRecord, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.VaccinationRecord, error)
	Update(db *gorm.DB, record *entity.VaccinationRecord) error
	Delete(db *gorm.DB, id int) error
}
