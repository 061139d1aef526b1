package repository

import (
	"go-vaccination-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindByAssignedTo(db *gorm.DB, staffID uuid.UUID) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error
	Assign(db *gorm.DB, id int, staffID uuid.UUID) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
