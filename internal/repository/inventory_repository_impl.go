package repository

import (
	"errors"
	"time"

	"go-vaccination-clinic/internal/domain/entity"
	domainRepo "go-vaccination-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type inventoryRepository struct{}

func NewInventoryRepository() domainRepo.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) Create(db *gorm.DB, batch *entity.InventoryBatch) error {
	return db.Create(batch).Error
}

func (r *inventoryRepository) FindByID(db *gorm.DB, id int) (*entity.InventoryBatch, error) {
	var batch entity.InventoryBatch
	err := db.Where("id = ?", id).First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

func (r *inventoryRepository) FindAll(db *gorm.DB) ([]entity.InventoryBatch, error) {
	var batches []entity.InventoryBatch
	err := db.Preload("Vaccine").Order("vaccine_id ASC, id ASC").Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *inventoryRepository) Update(db *gorm.DB, batch *entity.InventoryBatch) error {
	return db.Save(batch).Error
}

func (r *inventoryRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.InventoryBatch{}).Error
}

func (r *inventoryRepository) AvailableQuantity(db *gorm.DB, vaccineID int, today time.Time) (int64, error) {
	var total int64
	err := db.Model(&entity.InventoryBatch{}).
		Where("vaccine_id = ? AND quantity > 0", vaccineID).
		Where("expiry_date IS NULL OR expiry_date >= ?", today).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *inventoryRepository) NextBatchFEFO(db *gorm.DB, vaccineID int, today time.Time) (*entity.InventoryBatch, error) {
	var batch entity.InventoryBatch
	// Earliest expiry first, never-expiring batches last, batch id as the
	// tie-breaker. The CASE keeps NULL ordering portable across dialects.
	err := db.Where("vaccine_id = ? AND quantity > 0", vaccineID).
		Where("expiry_date IS NULL OR expiry_date >= ?", today).
		Order("CASE WHEN expiry_date IS NULL THEN 1 ELSE 0 END, expiry_date ASC, id ASC").
		First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}
