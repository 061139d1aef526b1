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

func newTestNotificationUsecase(db *gorm.DB) NotificationUsecase {
	return NewNotificationUsecase(
		db,
		newTestLogger(),
		repository.NewNotificationRepository(),
		repository.NewUserRepository(),
	)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	uc := newTestNotificationUsecase(db)
	owner := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)

	notification := &entity.Notification{UserID: owner.ID, Title: "Reminder"}
	require.NoError(t, db.Create(notification).Error)

	count, err := uc.UnreadCount(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, uc.MarkRead(context.Background(), notification.ID, owner.ID))

	count, err = uc.UnreadCount(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkRead_OtherUsersNotification(t *testing.T) {
	db := newTestDB(t)
	uc := newTestNotificationUsecase(db)
	owner := seedUser(t, db, "Jane Doe", "jane@example.com", entity.RolePatient)
	other := seedUser(t, db, "John Doe", "john@example.com", entity.RolePatient)

	notification := &entity.Notification{UserID: owner.ID, Title: "Reminder"}
	require.NoError(t, db.Create(notification).Error)

	err := uc.MarkRead(context.Background(), notification.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	var unchanged entity.Notification
	require.NoError(t, db.First(&unchanged, notification.ID).Error)
	assert.False(t, unchanged.IsRead)
}

func TestBroadcast_Targets(t *testing.T) {
	db := newTestDB(t)
	uc := newTestNotificationUsecase(db)

	seedUser(t, db, "Patient One", "p1@example.com", entity.RolePatient)
	seedUser(t, db, "Patient Two", "p2@example.com", entity.RolePatient)
	seedUser(t, db, "Nurse", "nurse@example.com", entity.RoleStaff)
	admin := seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	tests := []struct {
		target string
		want   int
	}{
		{entity.BroadcastTargetPatients, 2},
		{entity.BroadcastTargetStaff, 1},
		{entity.BroadcastTargetAll, 4},
	}
	for _, tc := range tests {
		got, err := uc.Broadcast(context.Background(), &dto.BroadcastRequest{
			Target:  tc.target,
			Title:   "Clinic closed Friday",
			Message: "See you Monday.",
		})
		require.NoError(t, err, "target %s", tc.target)
		assert.Equal(t, tc.want, got, "target %s", tc.target)
	}

	// One row per recipient.
	var total int64
	require.NoError(t, db.Model(&entity.Notification{}).Count(&total).Error)
	assert.Equal(t, int64(7), total)

	// Single-user target.
	got, err := uc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Target: entity.BroadcastTargetUser,
		UserID: &admin.ID,
		Title:  "Direct message",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBroadcast_UserTargetValidation(t *testing.T) {
	db := newTestDB(t)
	uc := newTestNotificationUsecase(db)

	_, err := uc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Target: entity.BroadcastTargetUser,
		Title:  "Hello",
	})
	assert.ErrorIs(t, err, ErrTargetUserRequired)

	missing := uuid.New()
	_, err = uc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Target: entity.BroadcastTargetUser,
		UserID: &missing,
		Title:  "Hello",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBroadcast_InvalidTarget(t *testing.T) {
	db := newTestDB(t)
	uc := newTestNotificationUsecase(db)

	_, err := uc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Target: "everyone",
		Title:  "Hello",
	})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}
