package dto

import "time"

type CreateBatchRequest struct {
	VaccineID  int    `json:"vaccine_id" validate:"required,min=1"`
	BatchNo    string `json:"batch_no" validate:"required,max=100"`
	Quantity   int    `json:"quantity" validate:"gte=0"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBatchRequest struct {
	BatchNo    string `json:"batch_no" validate:"omitempty,max=100"`
	Quantity   *int   `json:"quantity" validate:"omitempty,gte=0"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type AdjustBatchRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type BatchResponse struct {
	ID          int        `json:"id"`
	VaccineID   int        `json:"vaccine_id"`
	VaccineName string     `json:"vaccine_name,omitempty"`
	BatchNo     string     `json:"batch_no"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
