package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateRecordRequest struct {
	DoseNo  *int   `json:"dose_no" validate:"omitempty,min=1"`
	GivenOn string `json:"given_on" validate:"omitempty"`
}

type VaccinationRecordResponse struct {
	ID            int       `json:"id"`
	PatientID     int       `json:"patient_id"`
	VaccineID     int       `json:"vaccine_id"`
	DoseNo        int       `json:"dose_no"`
	GivenOn       time.Time `json:"given_on"`
	GivenBy       uuid.UUID `json:"given_by"`
	AppointmentID int       `json:"appointment_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	VaccineName   string    `json:"vaccine_name,omitempty"`
	IssuerName    string    `json:"issuer_name,omitempty"`
}
