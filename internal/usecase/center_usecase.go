package usecase

import (
	"context"
	"errors"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCenterNotFound = errors.New("center not found")

type CenterUsecase interface {
	CreateCenter(ctx context.Context, req *dto.CreateCenterRequest) (*dto.CenterResponse, error)
	GetCenter(ctx context.Context, id int) (*dto.CenterResponse, error)
	GetAllCenters(ctx context.Context) ([]dto.CenterResponse, error)
	UpdateCenter(ctx context.Context, id int, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error)
	DeleteCenter(ctx context.Context, id int) error
}

type centerUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	centerRepo repository.CenterRepository
}

func NewCenterUsecase(db *gorm.DB, log *logrus.Logger, centerRepo repository.CenterRepository) CenterUsecase {
	return &centerUsecase{
		db:         db,
		log:        log,
		centerRepo: centerRepo,
	}
}

func (u *centerUsecase) CreateCenter(ctx context.Context, req *dto.CreateCenterRequest) (*dto.CenterResponse, error) {
	center := &entity.Center{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := u.centerRepo.Create(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to create center: %+v", err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) GetCenter(ctx context.Context, id int) (*dto.CenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center %d: %+v", id, err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}
	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) GetAllCenters(ctx context.Context) ([]dto.CenterResponse, error) {
	centers, err := u.centerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find centers: %+v", err)
		return nil, err
	}
	return converter.CentersToResponses(centers), nil
}

func (u *centerUsecase) UpdateCenter(ctx context.Context, id int, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center %d: %+v", id, err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	if req.Name != "" {
		center.Name = req.Name
	}
	if req.Address != "" {
		center.Address = req.Address
	}

	if err := u.centerRepo.Update(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to update center %d: %+v", id, err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) DeleteCenter(ctx context.Context, id int) error {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center %d: %+v", id, err)
		return err
	}
	if center == nil {
		return ErrCenterNotFound
	}
	return u.centerRepo.Delete(u.db.WithContext(ctx), id)
}
