package usecase

import (
	"io"
	"testing"
	"time"

	"go-vaccination-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Vaccine{},
		&entity.Center{},
		&entity.InventoryBatch{},
		&entity.Appointment{},
		&entity.VaccinationRecord{},
		&entity.Feedback{},
		&entity.Notification{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPatient(t *testing.T, db *gorm.DB, user *entity.User) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		UserID:   user.ID,
		FullName: user.Name,
	}
	require.NoError(t, db.Create(patient).Error)
	return patient
}

func seedVaccine(t *testing.T, db *gorm.DB, name string) *entity.Vaccine {
	t.Helper()

	vaccine := &entity.Vaccine{Name: name, DoseType: "single"}
	require.NoError(t, db.Create(vaccine).Error)
	return vaccine
}

func seedCenter(t *testing.T, db *gorm.DB, name string) *entity.Center {
	t.Helper()

	center := &entity.Center{Name: name, Address: "1 Clinic Road"}
	require.NoError(t, db.Create(center).Error)
	return center
}

func seedBatch(t *testing.T, db *gorm.DB, vaccineID, quantity int, expiry *time.Time) *entity.InventoryBatch {
	t.Helper()

	batch := &entity.InventoryBatch{
		VaccineID:  vaccineID,
		BatchNo:    "BATCH-" + uuid.New().String()[:8],
		Quantity:   quantity,
		ExpiryDate: expiry,
	}
	require.NoError(t, db.Create(batch).Error)
	return batch
}

func seedAppointment(t *testing.T, db *gorm.DB, patientID, vaccineID, centerID int) *entity.Appointment {
	t.Helper()

	appointment := &entity.Appointment{
		PatientID:       patientID,
		VaccineID:       vaccineID,
		CenterID:        centerID,
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		Status:          entity.AppointmentStatusBooked,
		DoseNo:          1,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment
}

func dateIn(days int) *time.Time {
	d := time.Now().AddDate(0, 0, days).Truncate(24 * time.Hour)
	return &d
}
