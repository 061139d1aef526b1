package repository

import (
	"errors"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type vaccinationRecordRepository struct{}

func NewVaccinationRecordRepository() domainRepo.VaccinationRecordRepository {
	return &vaccinationRecordRepository{}
}

func (r *vaccinationRecordRepository) Create(db *gorm.DB, record *entity.VaccinationRecord) error {
	return db.Create(record).Error
}

func (r *vaccinationRecordRepository) FindByID(db *gorm.DB, id int) (*entity.VaccinationRecord, error) {
	var record entity.VaccinationRecord
	err := db.Preload("Patient").Preload("Vaccine").Preload("Issuer").
		Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *vaccinationRecordRepository) FindAll(db *gorm.DB) ([]entity.VaccinationRecord, error) {
	var records []entity.VaccinationRecord
	err := db.Preload("Patient").Preload("Vaccine").
		Order("given_on DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *vaccinationRecordRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.VaccinationRecord, error) {
	var records []entity.VaccinationRecord
	err := db.Preload("Vaccine").
		Where("patient_id = ?", patientID).
		Order("given_on DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *vaccinationRecordRepository) Update(db *gorm.DB, record *entity.VaccinationRecord) error {
	return db.Save(record).Error
}

func (r *vaccinationRecordRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.VaccinationRecord{}).Error
}
