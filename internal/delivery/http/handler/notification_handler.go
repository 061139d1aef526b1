package handler

import (
	"encoding/json"
	"net/http"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/delivery/http/middleware"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/response"
	"go-vaccination-clinic/pkg/validator"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	notifications, err := h.notificationUsecase.GetMyNotifications(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	count, err := h.notificationUsecase.UnreadCount(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to count notifications")
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", dto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), id, userID); err != nil {
		if err == usecase.ErrNotificationNotFound {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Failed to mark notification read")
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	recipients, err := h.notificationUsecase.Broadcast(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTarget:
			response.Error(w, http.StatusBadRequest, "Invalid broadcast target", nil)
		case usecase.ErrTargetUserRequired:
			response.Error(w, http.StatusBadRequest, "user_id is required when target is user", nil)
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Target user not found")
		default:
			response.InternalServerError(w, "Failed to broadcast notification")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Broadcast sent successfully", dto.BroadcastResponse{Recipients: recipients})
}
