package usecase

import (
	"context"
	"errors"
	"strings"

	"go-vaccination-clinic/internal/converter"
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrEmptyMessage     = errors.New("message must not be empty")
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, userID uuid.UUID, req *dto.CreateFeedbackRequest, attachmentPath string) (*dto.FeedbackResponse, error)
	GetMyFeedback(ctx context.Context, userID uuid.UUID) ([]dto.FeedbackResponse, error)
	GetAllFeedback(ctx context.Context) ([]dto.FeedbackResponse, error)
	Reply(ctx context.Context, id int, reply string) (*dto.FeedbackResponse, error)
	Close(ctx context.Context, id int) error
	DeleteFeedback(ctx context.Context, id int) error
}

type feedbackUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackUsecase(db *gorm.DB, log *logrus.Logger, feedbackRepo repository.FeedbackRepository) FeedbackUsecase {
	return &feedbackUsecase{
		db:           db,
		log:          log,
		feedbackRepo: feedbackRepo,
	}
}

func (u *feedbackUsecase) CreateFeedback(ctx context.Context, userID uuid.UUID, req *dto.CreateFeedbackRequest, attachmentPath string) (*dto.FeedbackResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	feedback := &entity.Feedback{
		UserID:         userID,
		Type:           req.Type,
		AppointmentID:  req.AppointmentID,
		CenterID:       req.CenterID,
		Rating:         req.Rating,
		Message:        req.Message,
		AttachmentPath: attachmentPath,
		Status:         entity.FeedbackStatusOpen,
	}

	if err := u.feedbackRepo.Create(u.db.WithContext(ctx), feedback); err != nil {
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetMyFeedback(ctx context.Context, userID uuid.UUID) ([]dto.FeedbackResponse, error) {
	feedbacks, err := u.feedbackRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find feedback for user %s: %+v", userID, err)
		return nil, err
	}
	return converter.FeedbacksToResponses(feedbacks), nil
}

func (u *feedbackUsecase) GetAllFeedback(ctx context.Context) ([]dto.FeedbackResponse, error) {
	feedbacks, err := u.feedbackRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	return converter.FeedbacksToResponses(feedbacks), nil
}

// Reply stores the admin's reply and re-opens the ticket so the submitter
// sees there is activity on it.
func (u *feedbackUsecase) Reply(ctx context.Context, id int, reply string) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	feedback.AdminReply = reply
	feedback.Status = entity.FeedbackStatusOpen

	if err := u.feedbackRepo.Update(u.db.WithContext(ctx), feedback); err != nil {
		u.log.Warnf("Failed to reply to feedback %d: %+v", id, err)
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) Close(ctx context.Context, id int) error {
	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}

	feedback.Status = entity.FeedbackStatusClosed
	if err := u.feedbackRepo.Update(u.db.WithContext(ctx), feedback); err != nil {
		u.log.Warnf("Failed to close feedback %d: %+v", id, err)
		return err
	}
	return nil
}

func (u *feedbackUsecase) DeleteFeedback(ctx context.Context, id int) error {
	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find feedback %d: %+v", id, err)
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}
	return u.feedbackRepo.Delete(u.db.WithContext(ctx), id)
}
