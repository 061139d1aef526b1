package usecase

import (
	"context"
	"errors"
	"time"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrBatchNotFound = errors.New("inventory batch not found")

type InventoryUsecase interface {
	CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResponse, error)
	GetBatch(ctx context.Context, id int) (*dto.BatchResponse, error)
	GetAllBatches(ctx context.Context) ([]dto.BatchResponse, error)
	UpdateBatch(ctx context.Context, id int, req *dto.UpdateBatchRequest) (*dto.BatchResponse, error)
	DeleteBatch(ctx context.Context, id int) error
	AdjustBatch(ctx context.Context, id int, delta int) (*dto.BatchResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	inventoryRepo repository.InventoryRepository
	vaccineRepo   repository.VaccineRepository
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	vaccineRepo repository.VaccineRepository,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		inventoryRepo: inventoryRepo,
		vaccineRepo:   vaccineRepo,
	}
}

func (u *inventoryUsecase) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	vaccine, err := u.vaccineRepo.FindByID(u.db.WithContext(ctx), req.VaccineID)
	if err != nil {
		u.log.Warnf("Failed to find vaccine %d: %+v", req.VaccineID, err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}

	batch := &entity.InventoryBatch{
		VaccineID: req.VaccineID,
		BatchNo:   req.BatchNo,
		Quantity:  req.Quantity,
	}
	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		batch.ExpiryDate = &expiry
	}

	if err := u.inventoryRepo.Create(u.db.WithContext(ctx), batch); err != nil {
		u.log.Warnf("Failed to create batch: %+v", err)
		return nil, err
	}

	return converter.BatchToResponse(batch), nil
}

func (u *inventoryUsecase) GetBatch(ctx context.Context, id int) (*dto.BatchResponse, error) {
	batch, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find batch %d: %+v", id, err)
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	return converter.BatchToResponse(batch), nil
}

func (u *inventoryUsecase) GetAllBatches(ctx context.Context) ([]dto.BatchResponse, error) {
	batches, err := u.inventoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find batches: %+v", err)
		return nil, err
	}
	return converter.BatchesToResponses(batches), nil
}

func (u *inventoryUsecase) UpdateBatch(ctx context.Context, id int, req *dto.UpdateBatchRequest) (*dto.BatchResponse, error) {
	batch, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find batch %d: %+v", id, err)
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	if req.BatchNo != "" {
		batch.BatchNo = req.BatchNo
	}
	if req.Quantity != nil {
		quantity := *req.Quantity
		if quantity < 0 {
			quantity = 0
		}
		batch.Quantity = quantity
	}
	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		batch.ExpiryDate = &expiry
	}

	if err := u.inventoryRepo.Update(u.db.WithContext(ctx), batch); err != nil {
		u.log.Warnf("Failed to update batch %d: %+v", id, err)
		return nil, err
	}

	return converter.BatchToResponse(batch), nil
}

func (u *inventoryUsecase) DeleteBatch(ctx context.Context, id int) error {
	batch, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find batch %d: %+v", id, err)
		return err
	}
	if batch == nil {
		return ErrBatchNotFound
	}
	return u.inventoryRepo.Delete(u.db.WithContext(ctx), id)
}

// AdjustBatch applies a signed quantity delta, floored at zero.
func (u *inventoryUsecase) AdjustBatch(ctx context.Context, id int, delta int) (*dto.BatchResponse, error) {
	batch, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find batch %d: %+v", id, err)
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	batch.Quantity += delta
	if batch.Quantity < 0 {
		batch.Quantity = 0
	}

	if err := u.inventoryRepo.Update(u.db.WithContext(ctx), batch); err != nil {
		u.log.Warnf("Failed to adjust batch %d: %+v", id, err)
		return nil, err
	}

	return converter.BatchToResponse(batch), nil
}
