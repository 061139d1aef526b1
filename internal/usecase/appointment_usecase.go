package usecase

import (
	"context"
	"errors"
	"time"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("invalid appointment date")
	ErrInvalidPatient      = errors.New("patient does not belong to you")
	ErrOutOfStock          = errors.New("vaccine is out of stock")
	ErrStaffNotFound       = errors.New("staff user not found")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, userID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, userID uuid.UUID) ([]dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAssignedAppointments(ctx context.Context, staffID uuid.UUID) ([]dto.AppointmentResponse, error)
	SetStatus(ctx context.Context, id int, status string) error
	Assign(ctx context.Context, id int, staffID uuid.UUID) error
	Complete(ctx context.Context, id int, adminID uuid.UUID) (*dto.VaccinationRecordResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	inventoryRepo   repository.InventoryRepository
	recordRepo      repository.VaccinationRecordRepository
	userRepo        repository.UserRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	inventoryRepo repository.InventoryRepository,
	recordRepo repository.VaccinationRecordRepository,
	userRepo repository.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		inventoryRepo:   inventoryRepo,
		recordRepo:      recordRepo,
		userRepo:        userRepo,
	}
}

// Book validates and inserts a new appointment with status "booked".
//
// The stock check here is a plain read: stock is only debited when the
// appointment is completed, so two concurrent bookings can both pass the
// check against the same last dose. That overbooking window is a documented
// property of the product, not something this method tries to lock away.
func (u *appointmentUsecase) Book(ctx context.Context, userID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil || patient.UserID != userID {
		return nil, ErrInvalidPatient
	}

	today := startOfDay(time.Now())
	available, err := u.inventoryRepo.AvailableQuantity(u.db.WithContext(ctx), req.VaccineID, today)
	if err != nil {
		u.log.Warnf("Failed to check stock for vaccine %d: %+v", req.VaccineID, err)
		return nil, err
	}
	if available <= 0 {
		return nil, ErrOutOfStock
	}

	doseNo := req.DoseNo
	if doseNo <= 0 {
		doseNo = 1
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		VaccineID:       req.VaccineID,
		CenterID:        req.CenterID,
		AppointmentDate: appointmentDate,
		Status:          entity.AppointmentStatusBooked,
		DoseNo:          doseNo,
		Note:            req.Note,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%d, patient=%d, vaccine=%d", appointment.ID, appointment.PatientID, appointment.VaccineID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, userID uuid.UUID) ([]dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return []dto.AppointmentResponse{}, nil
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

// GetAssignedAppointments lists the appointments assigned to a staff user,
// the working queue they see after an admin assigns them.
func (u *appointmentUsecase) GetAssignedAppointments(ctx context.Context, staffID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByAssignedTo(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find appointments assigned to %s: %+v", staffID, err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) SetStatus(ctx context.Context, id int, status string) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, entity.AppointmentStatus(status)); err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) Assign(ctx context.Context, id int, staffID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	staff, err := u.userRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	if err := u.appointmentRepo.Assign(u.db.WithContext(ctx), id, staffID); err != nil {
		u.log.Warnf("Failed to assign appointment %d: %+v", id, err)
		return err
	}
	return nil
}

// Complete administers the dose for an appointment inside a single
// transaction: pick the earliest-expiring batch with stock, decrement it by
// one, insert the vaccination record, and mark the appointment completed.
// Any failure past the batch selection rolls the whole thing back; no
// partial decrement or record ever persists.
func (u *appointmentUsecase) Complete(ctx context.Context, id int, adminID uuid.UUID) (*dto.VaccinationRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Errorf("Failed to begin completion transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	today := startOfDay(time.Now())
	batch, err := u.inventoryRepo.NextBatchFEFO(tx, appointment.VaccineID, today)
	if err != nil {
		u.log.Warnf("Failed to select batch for vaccine %d: %+v", appointment.VaccineID, err)
		return nil, err
	}
	if batch == nil {
		return nil, ErrOutOfStock
	}

	batch.Quantity--
	if err := u.inventoryRepo.Update(tx, batch); err != nil {
		u.log.Errorf("Failed to decrement batch %d: %+v", batch.ID, err)
		return nil, err
	}

	doseNo := appointment.DoseNo
	if doseNo <= 0 {
		doseNo = 1
	}

	record := &entity.VaccinationRecord{
		PatientID:     appointment.PatientID,
		VaccineID:     appointment.VaccineID,
		DoseNo:        doseNo,
		GivenOn:       time.Now(),
		GivenBy:       adminID,
		AppointmentID: appointment.ID,
	}
	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Errorf("Failed to create vaccination record: %+v", err)
		return nil, err
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, entity.AppointmentStatusCompleted); err != nil {
		u.log.Errorf("Failed to mark appointment %d completed: %+v", appointment.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit completion transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment completed: id=%d, batch=%d, record=%d", appointment.ID, batch.ID, record.ID)
	return converter.VaccinationRecordToResponse(record), nil
}

// parseAppointmentDate accepts RFC3339 timestamps or plain dates.
func parseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
