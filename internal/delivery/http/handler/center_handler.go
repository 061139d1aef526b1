package handler

import (
	"encoding/json"
	"net/http"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/response"
	"go-vaccination-clinic/pkg/validator"
)

type CenterHandler struct {
	centerUsecase usecase.CenterUsecase
	validator     *validator.CustomValidator
}

func NewCenterHandler(centerUsecase usecase.CenterUsecase, validator *validator.CustomValidator) *CenterHandler {
	return &CenterHandler{
		centerUsecase: centerUsecase,
		validator:     validator,
	}
}

func (h *CenterHandler) CreateCenter(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.CreateCenter(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create center")
		return
	}

	response.Success(w, http.StatusCreated, "Center created successfully", center)
}

func (h *CenterHandler) GetCenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	center, err := h.centerUsecase.GetCenter(r.Context(), id)
	if err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to get center")
		return
	}

	response.Success(w, http.StatusOK, "Center retrieved successfully", center)
}

func (h *CenterHandler) GetAllCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.centerUsecase.GetAllCenters(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get centers")
		return
	}

	response.Success(w, http.StatusOK, "Centers retrieved successfully", centers)
}

func (h *CenterHandler) UpdateCenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	var req dto.UpdateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.UpdateCenter(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to update center")
		return
	}

	response.Success(w, http.StatusOK, "Center updated successfully", center)
}

func (h *CenterHandler) DeleteCenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	if err := h.centerUsecase.DeleteCenter(r.Context(), id); err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to delete center")
		return
	}

	response.Success(w, http.StatusOK, "Center deleted successfully", nil)
}
