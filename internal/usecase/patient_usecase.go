package usecase

import (
	"context"
	"errors"
	"time"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	AttachIDProof(ctx context.Context, userID uuid.UUID, path string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDate
		}
		patient.DateOfBirth = &dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		patient.Address = req.Address
	}

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) AttachIDProof(ctx context.Context, userID uuid.UUID, path string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.IDProofPath = path
	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to store ID proof for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}
