package handler

import (
	"encoding/json"
	"net/http"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/response"
	"go-vaccination-clinic/pkg/validator"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	batch, err := h.inventoryUsecase.CreateBatch(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVaccineNotFound:
			response.Error(w, http.StatusBadRequest, "Vaccine not found", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid expiry date", nil)
		default:
			response.InternalServerError(w, "Failed to create batch")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Batch created successfully", batch)
}

func (h *InventoryHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid batch ID", nil)
		return
	}

	batch, err := h.inventoryUsecase.GetBatch(r.Context(), id)
	if err != nil {
		if err == usecase.ErrBatchNotFound {
			response.NotFound(w, "Batch not found")
			return
		}
		response.InternalServerError(w, "Failed to get batch")
		return
	}

	response.Success(w, http.StatusOK, "Batch retrieved successfully", batch)
}

func (h *InventoryHandler) GetAllBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.inventoryUsecase.GetAllBatches(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get batches")
		return
	}

	response.Success(w, http.StatusOK, "Batches retrieved successfully", batches)
}

func (h *InventoryHandler) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid batch ID", nil)
		return
	}

	var req dto.UpdateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	batch, err := h.inventoryUsecase.UpdateBatch(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBatchNotFound:
			response.NotFound(w, "Batch not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid expiry date", nil)
		default:
			response.InternalServerError(w, "Failed to update batch")
		}
		return
	}

	response.Success(w, http.StatusOK, "Batch updated successfully", batch)
}

func (h *InventoryHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid batch ID", nil)
		return
	}

	if err := h.inventoryUsecase.DeleteBatch(r.Context(), id); err != nil {
		if err == usecase.ErrBatchNotFound {
			response.NotFound(w, "Batch not found")
			return
		}
		response.InternalServerError(w, "Failed to delete batch")
		return
	}

	response.Success(w, http.StatusOK, "Batch deleted successfully", nil)
}

func (h *InventoryHandler) AdjustBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid batch ID", nil)
		return
	}

	var req dto.AdjustBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	batch, err := h.inventoryUsecase.AdjustBatch(r.Context(), id, req.Delta)
	if err != nil {
		if err == usecase.ErrBatchNotFound {
			response.NotFound(w, "Batch not found")
			return
		}
		response.InternalServerError(w, "Failed to adjust batch")
		return
	}

	response.Success(w, http.StatusOK, "Batch adjusted successfully", batch)
}
