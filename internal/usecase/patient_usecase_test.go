package usecase

import (
	"context"
	"testing"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPatientUsecase(db *gorm.DB) PatientUsecase {
	return NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository())
}

func TestUpdateMyProfile_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	uc := newTestPatientUsecase(db)
	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	seedPatient(t, db, user)

	resp, err := uc.UpdateMyProfile(context.Background(), user.ID, &dto.UpdatePatientRequest{
		DateOfBirth: "1990-04-20",
		Gender:      entity.GenderFemale,
		PhoneNumber: "+1-555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.FullName, "unset fields keep their value")
	assert.Equal(t, entity.GenderFemale, resp.Gender)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, "1990-04-20", resp.DateOfBirth.Format("2006-01-02"))
}

func TestUpdateMyProfile_BadDateOfBirth(t *testing.T) {
	db := newTestDB(t)
	uc := newTestPatientUsecase(db)
	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	seedPatient(t, db, user)

	_, err := uc.UpdateMyProfile(context.Background(), user.ID, &dto.UpdatePatientRequest{
		DateOfBirth: "20-04-1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetMyProfile_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newTestPatientUsecase(db)

	_, err := uc.GetMyProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestAttachIDProof(t *testing.T) {
	db := newTestDB(t)
	uc := newTestPatientUsecase(db)
	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	seedPatient(t, db, user)

	resp, err := uc.AttachIDProof(context.Background(), user.ID, "public/uploads/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "public/uploads/abc.png", resp.IDProofPath)

	var stored entity.Patient
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, "public/uploads/abc.png", stored.IDProofPath)
}
