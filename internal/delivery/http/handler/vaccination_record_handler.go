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

type VaccinationRecordHandler struct {
	recordUsecase usecase.VaccinationRecordUsecase
	validator     *validator.CustomValidator
}

func NewVaccinationRecordHandler(recordUsecase usecase.VaccinationRecordUsecase, validator *validator.CustomValidator) *VaccinationRecordHandler {
	return &VaccinationRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *VaccinationRecordHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	records, err := h.recordUsecase.GetMyRecords(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get records")
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", records)
}

func (h *VaccinationRecordHandler) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetAllRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get records")
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", records)
}

func (h *VaccinationRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.UpdateRecord(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Record not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid given_on timestamp", nil)
		default:
			response.InternalServerError(w, "Failed to update record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Record updated successfully", record)
}

func (h *VaccinationRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.DeleteRecord(r.Context(), id); err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Record not found")
			return
		}
		response.InternalServerError(w, "Failed to delete record")
		return
	}

	response.Success(w, http.StatusOK, "Record deleted successfully", nil)
}

// DownloadCertificate renders the certificate PDF for the record and streams
// it back as the response body.
func (h *VaccinationRecordHandler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	path, err := h.recordUsecase.Certificate(r.Context(), id)
	if err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Record not found")
			return
		}
		response.InternalServerError(w, "Failed to generate certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=certificate.pdf")
	http.ServeFile(w, r, path)
}
