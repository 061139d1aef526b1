package entity

import "time"

// InventoryBatch is a stock lot of a vaccine sharing a batch number and
// expiry date. A nil ExpiryDate means the batch never expires.
type InventoryBatch struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	VaccineID  int        `gorm:"not null;index" json:"vaccine_id"`
	BatchNo    string     `gorm:"type:varchar(100);not null" json:"batch_no"`
	Quantity   int        `gorm:"not null;default:0" json:"quantity"`
	ExpiryDate *time.Time `gorm:"type:date;index" json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vaccine Vaccine `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
}

func (InventoryBatch) TableName() string {
	return "inventory"
}

// IsExpired reports whether the batch is past its expiry on the given day
func (b *InventoryBatch) IsExpired(today time.Time) bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(today)
}
