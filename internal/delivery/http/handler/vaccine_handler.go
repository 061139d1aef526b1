package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/response"
	"go-vaccination-clinic/pkg/validator"

	"github.com/gorilla/mux"
)

type VaccineHandler struct {
	vaccineUsecase usecase.VaccineUsecase
	validator      *validator.CustomValidator
}

func NewVaccineHandler(vaccineUsecase usecase.VaccineUsecase, validator *validator.CustomValidator) *VaccineHandler {
	return &VaccineHandler{
		vaccineUsecase: vaccineUsecase,
		validator:      validator,
	}
}

func (h *VaccineHandler) CreateVaccine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVaccineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccine, err := h.vaccineUsecase.CreateVaccine(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create vaccine")
		return
	}

	response.Success(w, http.StatusCreated, "Vaccine created successfully", vaccine)
}

func (h *VaccineHandler) GetVaccine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vaccine ID", nil)
		return
	}

	vaccine, err := h.vaccineUsecase.GetVaccine(r.Context(), id)
	if err != nil {
		if err == usecase.ErrVaccineNotFound {
			response.NotFound(w, "Vaccine not found")
			return
		}
		response.InternalServerError(w, "Failed to get vaccine")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine retrieved successfully", vaccine)
}

func (h *VaccineHandler) GetAllVaccines(w http.ResponseWriter, r *http.Request) {
	vaccines, err := h.vaccineUsecase.GetAllVaccines(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get vaccines")
		return
	}

	response.Success(w, http.StatusOK, "Vaccines retrieved successfully", vaccines)
}

func (h *VaccineHandler) UpdateVaccine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vaccine ID", nil)
		return
	}

	var req dto.UpdateVaccineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccine, err := h.vaccineUsecase.UpdateVaccine(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrVaccineNotFound {
			response.NotFound(w, "Vaccine not found")
			return
		}
		response.InternalServerError(w, "Failed to update vaccine")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine updated successfully", vaccine)
}

func (h *VaccineHandler) DeleteVaccine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vaccine ID", nil)
		return
	}

	if err := h.vaccineUsecase.DeleteVaccine(r.Context(), id); err != nil {
		if err == usecase.ErrVaccineNotFound {
			response.NotFound(w, "Vaccine not found")
			return
		}
		response.InternalServerError(w, "Failed to delete vaccine")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine deleted successfully", nil)
}

// pathID parses the {id} route variable shared by all resource handlers.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
