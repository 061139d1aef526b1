package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdatePatientRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=255"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Address     string `json:"address"`
}

type PatientResponse struct {
	ID          int        `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	FullName    string     `json:"full_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Address     string     `json:"address,omitempty"`
	IDProofPath string     `json:"id_proof_path,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
