package usecase

import (
	"context"
	"testing"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestInventoryUsecase(db *gorm.DB) InventoryUsecase {
	return NewInventoryUsecase(
		db,
		newTestLogger(),
		repository.NewInventoryRepository(),
		repository.NewVaccineRepository(),
	)
}

func TestCreateBatch(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)
	vaccine := seedVaccine(t, db, "MMR")

	resp, err := uc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		VaccineID:  vaccine.ID,
		BatchNo:    "LOT-1001",
		Quantity:   50,
		ExpiryDate: "2027-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "LOT-1001", resp.BatchNo)
	assert.Equal(t, 50, resp.Quantity)
	require.NotNil(t, resp.ExpiryDate)
	assert.Equal(t, "2027-06-30", resp.ExpiryDate.Format("2006-01-02"))
}

func TestCreateBatch_UnknownVaccine(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)

	_, err := uc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		VaccineID: 42,
		BatchNo:   "LOT-1001",
		Quantity:  50,
	})
	assert.ErrorIs(t, err, ErrVaccineNotFound)
}

func TestCreateBatch_BadExpiry(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)
	vaccine := seedVaccine(t, db, "MMR")

	_, err := uc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		VaccineID:  vaccine.ID,
		BatchNo:    "LOT-1001",
		Quantity:   50,
		ExpiryDate: "30/06/2027",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAdjustBatch(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)
	vaccine := seedVaccine(t, db, "MMR")
	batch := seedBatch(t, db, vaccine.ID, 10, nil)

	resp, err := uc.AdjustBatch(context.Background(), batch.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Quantity)

	resp, err = uc.AdjustBatch(context.Background(), batch.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Quantity)
}

func TestAdjustBatch_FloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)
	vaccine := seedVaccine(t, db, "MMR")
	batch := seedBatch(t, db, vaccine.ID, 3, nil)

	resp, err := uc.AdjustBatch(context.Background(), batch.ID, -10)
	require.NoError(t, err)
	assert.Zero(t, resp.Quantity, "quantity must never go negative")
}

func TestAdjustBatch_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)

	_, err := uc.AdjustBatch(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestUpdateBatch_NegativeQuantityFloored(t *testing.T) {
	db := newTestDB(t)
	uc := newTestInventoryUsecase(db)
	vaccine := seedVaccine(t, db, "MMR")
	batch := seedBatch(t, db, vaccine.ID, 5, nil)

	negative := -3
	resp, err := uc.UpdateBatch(context.Background(), batch.ID, &dto.UpdateBatchRequest{
		Quantity: &negative,
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Quantity)
}
