package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/delivery/http/middleware"
	"go-vaccination-clinic/internal/service"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/response"
	"go-vaccination-clinic/pkg/validator"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	uploadService   *service.UploadService
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, uploadService *service.UploadService, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		uploadService:   uploadService,
		validator:       validator,
	}
}

// CreateFeedback accepts a multipart form so the submitter can attach a
// screenshot or document alongside the ticket fields.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateFeedbackRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
			return
		}
		req = feedbackRequestFromForm(r)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	attachmentPath := ""
	if r.MultipartForm != nil {
		if file, header, err := r.FormFile("attachment"); err == nil {
			defer file.Close()
			path, err := h.uploadService.Save(file, header)
			if err != nil {
				if err == service.ErrUnsupportedFileType {
					response.Error(w, http.StatusBadRequest, "Unsupported file type", nil)
					return
				}
				response.InternalServerError(w, "Failed to store attachment")
				return
			}
			attachmentPath = path
		}
	}

	feedback, err := h.feedbackUsecase.CreateFeedback(r.Context(), userID, &req, attachmentPath)
	if err != nil {
		if err == usecase.ErrEmptyMessage {
			response.Error(w, http.StatusBadRequest, "message must not be empty", nil)
			return
		}
		response.InternalServerError(w, "Failed to create feedback")
		return
	}

	response.Success(w, http.StatusCreated, "Feedback submitted successfully", feedback)
}

func (h *FeedbackHandler) GetMyFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	feedbacks, err := h.feedbackUsecase.GetMyFeedback(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedbacks)
}

func (h *FeedbackHandler) GetAllFeedback(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.feedbackUsecase.GetAllFeedback(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedbacks)
}

func (h *FeedbackHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	var req dto.ReplyFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.Reply(r.Context(), id, req.Reply)
	if err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to reply to feedback")
		return
	}

	response.Success(w, http.StatusOK, "Reply saved successfully", feedback)
}

func (h *FeedbackHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	if err := h.feedbackUsecase.Close(r.Context(), id); err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to close feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback closed successfully", nil)
}

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	if err := h.feedbackUsecase.DeleteFeedback(r.Context(), id); err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to delete feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback deleted successfully", nil)
}

func feedbackRequestFromForm(r *http.Request) dto.CreateFeedbackRequest {
	req := dto.CreateFeedbackRequest{
		Type:    r.FormValue("type"),
		Message: r.FormValue("message"),
	}
	if v := r.FormValue("rating"); v != "" {
		if rating, err := strconv.Atoi(v); err == nil {
			req.Rating = rating
		}
	}
	if v := r.FormValue("appointment_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			req.AppointmentID = &id
		}
	}
	if v := r.FormValue("center_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			req.CenterID = &id
		}
	}
	return req
}
