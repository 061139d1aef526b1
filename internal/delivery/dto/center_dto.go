package dto

import "time"

type CreateCenterRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Address string `json:"address"`
}

type UpdateCenterRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=255"`
	Address string `json:"address"`
}

type CenterResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
