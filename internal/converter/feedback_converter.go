package converter

import (
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
)

func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}
	return &dto.FeedbackResponse{
		ID:             feedback.ID,
		UserID:         feedback.UserID,
		Type:           feedback.Type,
		AppointmentID:  feedback.AppointmentID,
		CenterID:       feedback.CenterID,
		Rating:         feedback.Rating,
		Message:        feedback.Message,
		AttachmentPath: feedback.AttachmentPath,
		Status:         string(feedback.Status),
		AdminReply:     feedback.AdminReply,
		CreatedAt:      feedback.CreatedAt,
		UpdatedAt:      feedback.UpdatedAt,
	}
}

func FeedbacksToResponses(feedbacks []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		responses[i] = *FeedbackToResponse(&feedback)
	}
	return responses
}

func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *NotificationToResponse(&notification)
	}
	return responses
}
