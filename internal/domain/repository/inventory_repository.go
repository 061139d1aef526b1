package repository

import (
	"time"

	"go-vaccination-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(db *gorm.DB, batch *entity.InventoryBatch) error
	FindByID(db *gorm.DB, id int) (*entity.InventoryBatch, error)
	FindAll(db *gorm.DB) ([]entity.InventoryBatch, error)
	Update(db *gorm.DB, batch *entity.InventoryBatch) error
	Delete(db *gorm.DB, id int) error

	// AvailableQuantity sums quantities across non-expired batches of a vaccine.
	AvailableQuantity(db *gorm.DB, vaccineID int, today time.Time) (int64, error)

	// NextBatchFEFO returns the earliest-expiring batch with stock for a
	// vaccine (never-expiring batches last, ties broken by batch id), or nil
	// when no eligible batch exists.
	NextBatchFEFO(db *gorm.DB, vaccineID int, today time.Time) (*entity.InventoryBatch, error)
}
