package usecase

import (
	"context"
	"os"
	"testing"
	"time"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/repository"
	"go-vaccination-clinic/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRecordUsecase(t *testing.T, db *gorm.DB) VaccinationRecordUsecase {
	t.Helper()

	certService, err := service.NewCertificateService(t.TempDir())
	require.NoError(t, err)

	return NewVaccinationRecordUsecase(
		db,
		newTestLogger(),
		repository.NewVaccinationRecordRepository(),
		repository.NewPatientRepository(),
		certService,
	)
}

func seedRecord(t *testing.T, db *gorm.DB) (*entity.VaccinationRecord, *entity.Patient) {
	t.Helper()

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)
	admin := seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	record := &entity.VaccinationRecord{
		PatientID:     patient.ID,
		VaccineID:     vaccine.ID,
		DoseNo:        1,
		GivenOn:       time.Now(),
		GivenBy:       admin.ID,
		AppointmentID: appointment.ID,
	}
	require.NoError(t, db.Create(record).Error)
	return record, patient
}

func TestGetMyRecords(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)
	record, patient := seedRecord(t, db)

	var owner entity.User
	require.NoError(t, db.First(&owner, "id = ?", patient.UserID).Error)

	records, err := uc.GetMyRecords(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestUpdateRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)
	record, _ := seedRecord(t, db)

	doseNo := 2
	givenOn := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	resp, err := uc.UpdateRecord(context.Background(), record.ID, &dto.UpdateRecordRequest{
		DoseNo:  &doseNo,
		GivenOn: givenOn.Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.DoseNo)
	assert.True(t, resp.GivenOn.Equal(givenOn))
}

func TestUpdateRecord_BadTimestamp(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)
	record, _ := seedRecord(t, db)

	_, err := uc.UpdateRecord(context.Background(), record.ID, &dto.UpdateRecordRequest{
		GivenOn: "yesterday",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)
	record, _ := seedRecord(t, db)

	require.NoError(t, uc.DeleteRecord(context.Background(), record.ID))
	assert.ErrorIs(t, uc.DeleteRecord(context.Background(), record.ID), ErrRecordNotFound)
}

func TestCertificate(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)
	record, _ := seedRecord(t, db)

	path, err := uc.Certificate(context.Background(), record.ID)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Regeneration overwrites in place.
	again, err := uc.Certificate(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestCertificate_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newTestRecordUsecase(t, db)

	_, err := uc.Certificate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
