package usecase

import (
	"context"
	"errors"
	"time"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/repository"
	"go-vaccination-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("vaccination record not found")

type VaccinationRecordUsecase interface {
	GetMyRecords(ctx context.Context, userID uuid.UUID) ([]dto.VaccinationRecordResponse, error)
	GetAllRecords(ctx context.Context) ([]dto.VaccinationRecordResponse, error)
	UpdateRecord(ctx context.Context, id int, req *dto.UpdateRecordRequest) (*dto.VaccinationRecordResponse, error)
	DeleteRecord(ctx context.Context, id int) error

	// Certificate renders (or re-renders) the PDF certificate for a record
	// and returns its file path.
	Certificate(ctx context.Context, id int) (string, error)
}

type vaccinationRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.VaccinationRecordRepository
	patientRepo repository.PatientRepository
	certService *service.CertificateService
}

func NewVaccinationRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.VaccinationRecordRepository,
	patientRepo repository.PatientRepository,
	certService *service.CertificateService,
) VaccinationRecordUsecase {
	return &vaccinationRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		certService: certService,
	}
}

func (u *vaccinationRecordUsecase) GetMyRecords(ctx context.Context, userID uuid.UUID) ([]dto.VaccinationRecordResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return []dto.VaccinationRecordResponse{}, nil
	}

	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find records for patient %d: %+v", patient.ID, err)
		return nil, err
	}
	return converter.VaccinationRecordsToResponses(records), nil
}

func (u *vaccinationRecordUsecase) GetAllRecords(ctx context.Context) ([]dto.VaccinationRecordResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find records: %+v", err)
		return nil, err
	}
	return converter.VaccinationRecordsToResponses(records), nil
}

func (u *vaccinationRecordUsecase) UpdateRecord(ctx context.Context, id int, req *dto.UpdateRecordRequest) (*dto.VaccinationRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if req.DoseNo != nil && *req.DoseNo > 0 {
		record.DoseNo = *req.DoseNo
	}
	if req.GivenOn != "" {
		givenOn, err := time.Parse(time.RFC3339, req.GivenOn)
		if err != nil {
			return nil, ErrInvalidDate
		}
		record.GivenOn = givenOn
	}

	if err := u.recordRepo.Update(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to update record %d: %+v", id, err)
		return nil, err
	}

	return converter.VaccinationRecordToResponse(record), nil
}

func (u *vaccinationRecordUsecase) DeleteRecord(ctx context.Context, id int) error {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", id, err)
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}
	return u.recordRepo.Delete(u.db.WithContext(ctx), id)
}

func (u *vaccinationRecordUsecase) Certificate(ctx context.Context, id int) (string, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", id, err)
		return "", err
	}
	if record == nil {
		return "", ErrRecordNotFound
	}

	path, err := u.certService.Render(service.CertificateData{
		RecordID:    record.ID,
		PatientName: record.Patient.FullName,
		VaccineName: record.Vaccine.Name,
		DoseNo:      record.DoseNo,
		GivenOn:     record.GivenOn,
		IssuerName:  record.Issuer.Name,
	})
	if err != nil {
		u.log.Errorf("Failed to render certificate for record %d: %+v", id, err)
		return "", err
	}

	return path, nil
}
