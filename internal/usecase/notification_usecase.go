package usecase

import (
	"context"
	"errors"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidTarget        = errors.New("invalid broadcast target")
	ErrTargetUserRequired   = errors.New("user_id is required for a single-user broadcast")
)

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id int, userID uuid.UUID) error
	Broadcast(ctx context.Context, req *dto.BroadcastRequest) (int, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (u *notificationUsecase) GetMyNotifications(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find notifications for user %s: %+v", userID, err)
		return nil, err
	}
	return converter.NotificationsToResponses(notifications), nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := u.notificationRepo.CountUnread(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications for user %s: %+v", userID, err)
		return 0, err
	}
	return count, nil
}

// MarkRead is scoped to the owner: marking someone else's notification
// matches zero rows and reports not found, leaking nothing.
func (u *notificationUsecase) MarkRead(ctx context.Context, id int, userID uuid.UUID) error {
	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification %d read: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// Broadcast inserts one notification row per recipient, synchronously. At
// this system's scale the O(n) inserts are acceptable; there is no queue.
func (u *notificationUsecase) Broadcast(ctx context.Context, req *dto.BroadcastRequest) (int, error) {
	var recipients []uuid.UUID

	switch req.Target {
	case entity.BroadcastTargetUser:
		if req.UserID == nil {
			return 0, ErrTargetUserRequired
		}
		user, err := u.userRepo.FindByID(u.db.WithContext(ctx), *req.UserID)
		if err != nil {
			u.log.Warnf("Failed to find broadcast target %s: %+v", *req.UserID, err)
			return 0, err
		}
		if user == nil {
			return 0, ErrUserNotFound
		}
		recipients = []uuid.UUID{user.ID}
	case entity.BroadcastTargetPatients:
		users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RolePatient)
		if err != nil {
			return 0, err
		}
		recipients = userIDs(users)
	case entity.BroadcastTargetStaff:
		users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleStaff)
		if err != nil {
			return 0, err
		}
		recipients = userIDs(users)
	case entity.BroadcastTargetAll:
		users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			return 0, err
		}
		recipients = userIDs(users)
	default:
		return 0, ErrInvalidTarget
	}

	notifications := make([]entity.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		notifications = append(notifications, entity.Notification{
			UserID:  recipient,
			Title:   req.Title,
			Message: req.Message,
		})
	}

	if err := u.notificationRepo.CreateBatch(u.db.WithContext(ctx), notifications); err != nil {
		u.log.Warnf("Failed to broadcast notification: %+v", err)
		return 0, err
	}

	u.log.Infof("Broadcast sent: target=%s, recipients=%d", req.Target, len(recipients))
	return len(recipients), nil
}

func userIDs(users []entity.User) []uuid.UUID {
	ids := make([]uuid.UUID, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}
	return ids
}
