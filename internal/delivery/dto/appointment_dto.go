package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,min=1"`
	VaccineID       int    `json:"vaccine_id" validate:"required,min=1"`
	CenterID        int    `json:"center_id" validate:"required,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	DoseNo          int    `json:"dose_no" validate:"omitempty,min=1"`
	Note            string `json:"note"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

type AssignRequest struct {
	StaffID uuid.UUID `json:"staff_id" validate:"required"`
}

type AppointmentResponse struct {
	ID              int        `json:"id"`
	PatientID       int        `json:"patient_id"`
	VaccineID       int        `json:"vaccine_id"`
	CenterID        int        `json:"center_id"`
	AppointmentDate time.Time  `json:"appointment_date"`
	Status          string     `json:"status"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty"`
	DoseNo          int        `json:"dose_no"`
	Note            string     `json:"note,omitempty"`
	VaccineName     string     `json:"vaccine_name,omitempty"`
	CenterName      string     `json:"center_name,omitempty"`
	PatientName     string     `json:"patient_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
