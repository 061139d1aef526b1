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

var ErrVaccineNotFound = errors.New("vaccine not found")

type VaccineUsecase interface {
	CreateVaccine(ctx context.Context, req *dto.CreateVaccineRequest) (*dto.VaccineResponse, error)
	GetVaccine(ctx context.Context, id int) (*dto.VaccineResponse, error)
	GetAllVaccines(ctx context.Context) ([]dto.VaccineResponse, error)
	UpdateVaccine(ctx context.Context, id int, req *dto.UpdateVaccineRequest) (*dto.VaccineResponse, error)
	DeleteVaccine(ctx context.Context, id int) error
}

type vaccineUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	vaccineRepo repository.VaccineRepository
}

func NewVaccineUsecase(db *gorm.DB, log *logrus.Logger, vaccineRepo repository.VaccineRepository) VaccineUsecase {
	return &vaccineUsecase{
		db:          db,
		log:         log,
		vaccineRepo: vaccineRepo,
	}
}

func (u *vaccineUsecase) CreateVaccine(ctx context.Context, req *dto.CreateVaccineRequest) (*dto.VaccineResponse, error) {
	vaccine := &entity.Vaccine{
		Name:         req.Name,
		DoseType:     req.DoseType,
		RequiredAge:  req.RequiredAge,
		Description:  req.Description,
		SideEffects:  req.SideEffects,
		Manufacturer: req.Manufacturer,
	}

	if err := u.vaccineRepo.Create(u.db.WithContext(ctx), vaccine); err != nil {
		u.log.Warnf("Failed to create vaccine: %+v", err)
		return nil, err
	}

	return converter.VaccineToResponse(vaccine), nil
}

func (u *vaccineUsecase) GetVaccine(ctx context.Context, id int) (*dto.VaccineResponse, error) {
	vaccine, err := u.vaccineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine %d: %+v", id, err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}
	return converter.VaccineToResponse(vaccine), nil
}

func (u *vaccineUsecase) GetAllVaccines(ctx context.Context) ([]dto.VaccineResponse, error) {
	vaccines, err := u.vaccineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find vaccines: %+v", err)
		return nil, err
	}
	return converter.VaccinesToResponses(vaccines), nil
}

func (u *vaccineUsecase) UpdateVaccine(ctx context.Context, id int, req *dto.UpdateVaccineRequest) (*dto.VaccineResponse, error) {
	vaccine, err := u.vaccineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine %d: %+v", id, err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}

	if req.Name != "" {
		vaccine.Name = req.Name
	}
	if req.DoseType != "" {
		vaccine.DoseType = req.DoseType
	}
	if req.RequiredAge != nil {
		vaccine.RequiredAge = *req.RequiredAge
	}
	if req.Description != "" {
		vaccine.Description = req.Description
	}
	if req.SideEffects != "" {
		vaccine.SideEffects = req.SideEffects
	}
	if req.Manufacturer != "" {
		vaccine.Manufacturer = req.Manufacturer
	}

	if err := u.vaccineRepo.Update(u.db.WithContext(ctx), vaccine); err != nil {
		u.log.Warnf("Failed to update vaccine %d: %+v", id, err)
		return nil, err
	}

	return converter.VaccineToResponse(vaccine), nil
}

func (u *vaccineUsecase) DeleteVaccine(ctx context.Context, id int) error {
	vaccine, err := u.vaccineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine %d: %+v", id, err)
		return err
	}
	if vaccine == nil {
		return ErrVaccineNotFound
	}
	return u.vaccineRepo.Delete(u.db.WithContext(ctx), id)
}
