package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient demographic data, linked 1:1 with a user account
type Patient struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	IDProofPath string     `gorm:"type:text" json:"id_proof_path,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
