package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment. Admins may set
// arbitrary status values through the status endpoint; these are the two the
// system itself writes.
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a patient's dose booking at a center
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	VaccineID       int               `gorm:"not null;index" json:"vaccine_id"`
	CenterID        int               `gorm:"not null;index" json:"center_id"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(30);not null;default:'booked';index" json:"status"`
	AssignedTo      *uuid.UUID        `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	DoseNo          int               `gorm:"not null;default:1" json:"dose_no"`
	Note            string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Vaccine Vaccine `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
	Center  Center  `gorm:"foreignKey:CenterID" json:"center,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
