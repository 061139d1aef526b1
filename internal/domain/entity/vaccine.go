package entity

import "time"

// Vaccine is an admin-owned catalog entry
type Vaccine struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	DoseType     string    `gorm:"type:varchar(100)" json:"dose_type,omitempty"`
	RequiredAge  int       `gorm:"default:0" json:"required_age"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	SideEffects  string    `gorm:"type:text" json:"side_effects,omitempty"`
	Manufacturer string    `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Batches []InventoryBatch `gorm:"foreignKey:VaccineID" json:"batches,omitempty"`
}

func (Vaccine) TableName() string {
	return "vaccines"
}
