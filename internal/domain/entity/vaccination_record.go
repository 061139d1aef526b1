package entity

import (
	"time"

	"github.com/google/uuid"
)

// VaccinationRecord is an administered dose. Rows are created only by the
// appointment completion transaction; admins may edit or delete afterwards.
type VaccinationRecord struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int       `gorm:"not null;index" json:"patient_id"`
	VaccineID     int       `gorm:"not null;index" json:"vaccine_id"`
	DoseNo        int       `gorm:"not null;default:1" json:"dose_no"`
	GivenOn       time.Time `gorm:"not null" json:"given_on"`
	GivenBy       uuid.UUID `gorm:"type:uuid;not null" json:"given_by"`
	AppointmentID int       `gorm:"not null;index" json:"appointment_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Vaccine     Vaccine     `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
	Issuer      User        `gorm:"foreignKey:GivenBy" json:"issuer,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (VaccinationRecord) TableName() string {
	return "vaccination_records"
}
