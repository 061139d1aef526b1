package dto

import "time"

type CreateVaccineRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	DoseType     string `json:"dose_type" validate:"omitempty,max=100"`
	RequiredAge  int    `json:"required_age" validate:"omitempty,gte=0"`
	Description  string `json:"description"`
	SideEffects  string `json:"side_effects"`
	Manufacturer string `json:"manufacturer" validate:"omitempty,max=255"`
}

type UpdateVaccineRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=255"`
	DoseType     string `json:"dose_type" validate:"omitempty,max=100"`
	RequiredAge  *int   `json:"required_age" validate:"omitempty,gte=0"`
	Description  string `json:"description"`
	SideEffects  string `json:"side_effects"`
	Manufacturer string `json:"manufacturer" validate:"omitempty,max=255"`
}

type VaccineResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	DoseType     string    `json:"dose_type,omitempty"`
	RequiredAge  int       `json:"required_age"`
	Description  string    `json:"description,omitempty"`
	SideEffects  string    `json:"side_effects,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
