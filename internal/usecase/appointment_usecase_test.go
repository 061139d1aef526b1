package usecase

import (
	"context"
	"testing"
	"time"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	return NewAppointmentUsecase(
		db,
		newTestLogger(),
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
		repository.NewInventoryRepository(),
		repository.NewVaccinationRecordRepository(),
		repository.NewUserRepository(),
	)
}

func TestBook_Appointment(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	seedBatch(t, db, vaccine.ID, 5, dateIn(90))

	resp, err := uc.Book(context.Background(), user.ID, &dto.BookAppointmentRequest{
		PatientID:       patient.ID,
		VaccineID:       vaccine.ID,
		CenterID:        center.ID,
		AppointmentDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusBooked), resp.Status)
	assert.Equal(t, 1, resp.DoseNo, "dose number should default to 1")
	assert.Equal(t, patient.ID, resp.PatientID)
}

func TestBook_InvalidDate(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)

	_, err := uc.Book(context.Background(), user.ID, &dto.BookAppointmentRequest{
		PatientID:       patient.ID,
		VaccineID:       1,
		CenterID:        1,
		AppointmentDate: "next tuesday",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBook_RFC3339Date(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	seedBatch(t, db, vaccine.ID, 5, nil)

	_, err := uc.Book(context.Background(), user.ID, &dto.BookAppointmentRequest{
		PatientID:       patient.ID,
		VaccineID:       vaccine.ID,
		CenterID:        center.ID,
		AppointmentDate: time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	})
	assert.NoError(t, err)
}

func TestBook_PatientOwnership(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	owner := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, owner)
	other := seedUser(t, db, "John Doe", "john@example.com", entity.RolePatient)

	_, err := uc.Book(context.Background(), other.ID, &dto.BookAppointmentRequest{
		PatientID:       patient.ID,
		VaccineID:       1,
		CenterID:        1,
		AppointmentDate: "2027-01-15",
	})
	assert.ErrorIs(t, err, ErrInvalidPatient)

	// Nonexistent patient is rejected the same way.
	_, err = uc.Book(context.Background(), other.ID, &dto.BookAppointmentRequest{
		PatientID:       9999,
		VaccineID:       1,
		CenterID:        1,
		AppointmentDate: "2027-01-15",
	})
	assert.ErrorIs(t, err, ErrInvalidPatient)
}

func TestBook_OutOfStock(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")

	req := &dto.BookAppointmentRequest{
		PatientID:       patient.ID,
		VaccineID:       vaccine.ID,
		CenterID:        center.ID,
		AppointmentDate: "2027-01-15",
	}

	// No batches at all.
	_, err := uc.Book(context.Background(), user.ID, req)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// An expired batch does not count as stock.
	seedBatch(t, db, vaccine.ID, 10, dateIn(-1))
	_, err = uc.Book(context.Background(), user.ID, req)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// A zero-quantity batch does not count either.
	seedBatch(t, db, vaccine.ID, 0, dateIn(90))
	_, err = uc.Book(context.Background(), user.ID, req)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestComplete_DecrementsStockAndCreatesRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	batch := seedBatch(t, db, vaccine.ID, 3, dateIn(90))
	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)
	admin := seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	resp, err := uc.Complete(context.Background(), appointment.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, resp.PatientID)
	assert.Equal(t, vaccine.ID, resp.VaccineID)
	assert.Equal(t, appointment.ID, resp.AppointmentID)
	assert.Equal(t, admin.ID, resp.GivenBy)
	assert.Equal(t, 1, resp.DoseNo)

	var updatedBatch entity.InventoryBatch
	require.NoError(t, db.First(&updatedBatch, batch.ID).Error)
	assert.Equal(t, 2, updatedBatch.Quantity)

	var updatedAppointment entity.Appointment
	require.NoError(t, db.First(&updatedAppointment, appointment.ID).Error)
	assert.Equal(t, entity.AppointmentStatusCompleted, updatedAppointment.Status)

	var recordCount int64
	require.NoError(t, db.Model(&entity.VaccinationRecord{}).Count(&recordCount).Error)
	assert.Equal(t, int64(1), recordCount)
}

func TestComplete_OutOfStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	seedBatch(t, db, vaccine.ID, 0, dateIn(90))
	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)

	_, err := uc.Complete(context.Background(), appointment.ID, uuid.New())
	assert.ErrorIs(t, err, ErrOutOfStock)

	var unchanged entity.Appointment
	require.NoError(t, db.First(&unchanged, appointment.ID).Error)
	assert.Equal(t, entity.AppointmentStatusBooked, unchanged.Status)

	var recordCount int64
	require.NoError(t, db.Model(&entity.VaccinationRecord{}).Count(&recordCount).Error)
	assert.Zero(t, recordCount)
}

func TestComplete_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	_, err := uc.Complete(context.Background(), 42, uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestComplete_PicksEarliestExpiringBatch(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")

	neverExpires := seedBatch(t, db, vaccine.ID, 5, nil)
	late := seedBatch(t, db, vaccine.ID, 5, dateIn(180))
	early := seedBatch(t, db, vaccine.ID, 5, dateIn(30))
	expired := seedBatch(t, db, vaccine.ID, 5, dateIn(-1))

	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)

	_, err := uc.Complete(context.Background(), appointment.ID, uuid.New())
	require.NoError(t, err)

	quantities := map[int]int{}
	for _, id := range []int{neverExpires.ID, late.ID, early.ID, expired.ID} {
		var b entity.InventoryBatch
		require.NoError(t, db.First(&b, id).Error)
		quantities[id] = b.Quantity
	}

	assert.Equal(t, 4, quantities[early.ID], "earliest-expiring batch should be debited")
	assert.Equal(t, 5, quantities[late.ID])
	assert.Equal(t, 5, quantities[neverExpires.ID])
	assert.Equal(t, 5, quantities[expired.ID], "expired batch must never be debited")
}

func TestComplete_NeverExpiringBatchIsLastResort(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")

	neverExpires := seedBatch(t, db, vaccine.ID, 5, nil)
	dated := seedBatch(t, db, vaccine.ID, 5, dateIn(300))

	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)

	_, err := uc.Complete(context.Background(), appointment.ID, uuid.New())
	require.NoError(t, err)

	var b entity.InventoryBatch
	require.NoError(t, db.First(&b, dated.ID).Error)
	assert.Equal(t, 4, b.Quantity, "dated batch should be preferred over never-expiring stock")

	var untouched entity.InventoryBatch
	require.NoError(t, db.First(&untouched, neverExpires.ID).Error)
	assert.Equal(t, 5, untouched.Quantity)
}

func TestSetStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)

	require.NoError(t, uc.SetStatus(context.Background(), appointment.ID, "cancelled"))

	var updated entity.Appointment
	require.NoError(t, db.First(&updated, appointment.ID).Error)
	assert.Equal(t, entity.AppointmentStatus("cancelled"), updated.Status)

	assert.ErrorIs(t, uc.SetStatus(context.Background(), 9999, "cancelled"), ErrAppointmentNotFound)
}

func TestAssign(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	appointment := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)
	staff := seedUser(t, db, "Nurse", "nurse@example.com", entity.RoleStaff)

	require.NoError(t, uc.Assign(context.Background(), appointment.ID, staff.ID))

	var updated entity.Appointment
	require.NoError(t, db.First(&updated, appointment.ID).Error)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, staff.ID, *updated.AssignedTo)

	assert.ErrorIs(t, uc.Assign(context.Background(), appointment.ID, uuid.New()), ErrStaffNotFound)
}

func TestGetAssignedAppointments(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	user := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	patient := seedPatient(t, db, user)
	vaccine := seedVaccine(t, db, "MMR")
	center := seedCenter(t, db, "Downtown Clinic")
	staff := seedUser(t, db, "Nurse", "nurse@example.com", entity.RoleStaff)
	otherStaff := seedUser(t, db, "Nurse Two", "nurse2@example.com", entity.RoleStaff)

	mine := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)
	theirs := seedAppointment(t, db, patient.ID, vaccine.ID, center.ID)
	seedAppointment(t, db, patient.ID, vaccine.ID, center.ID) // stays unassigned

	require.NoError(t, uc.Assign(context.Background(), mine.ID, staff.ID))
	require.NoError(t, uc.Assign(context.Background(), theirs.ID, otherStaff.ID))

	queue, err := uc.GetAssignedAppointments(context.Background(), staff.ID)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, mine.ID, queue[0].ID)

	empty, err := uc.GetAssignedAppointments(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetMyAppointments_NoProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAppointmentUsecase(db)

	appointments, err := uc.GetMyAppointments(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, appointments)
}
