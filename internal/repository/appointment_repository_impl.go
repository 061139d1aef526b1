package repository

import (
	"errors"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Preload("Vaccine").Preload("Center").
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Vaccine").Preload("Center").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByAssignedTo(db *gorm.DB, staffID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Preload("Vaccine").Preload("Center").
		Where("assigned_to = ?", staffID).
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *appointmentRepository) Assign(db *gorm.DB, id int, staffID uuid.UUID) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("assigned_to", staffID).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
