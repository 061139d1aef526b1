package converter

import (
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:          patient.ID,
		UserID:      patient.UserID,
		FullName:    patient.FullName,
		DateOfBirth: patient.DateOfBirth,
		Gender:      patient.Gender,
		PhoneNumber: patient.PhoneNumber,
		Address:     patient.Address,
		IDProofPath: patient.IDProofPath,
		CreatedAt:   patient.CreatedAt,
	}

	if patient.User.Email != "" {
		response.Email = patient.User.Email
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
