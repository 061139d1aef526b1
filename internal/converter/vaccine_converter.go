package converter

import (
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
)

func VaccineToResponse(vaccine *entity.Vaccine) *dto.VaccineResponse {
	if vaccine == nil {
		return nil
	}
	return &dto.VaccineResponse{
		ID:           vaccine.ID,
		Name:         vaccine.Name,
		DoseType:     vaccine.DoseType,
		RequiredAge:  vaccine.RequiredAge,
		Description:  vaccine.Description,
		SideEffects:  vaccine.SideEffects,
		Manufacturer: vaccine.Manufacturer,
		CreatedAt:    vaccine.CreatedAt,
		UpdatedAt:    vaccine.UpdatedAt,
	}
}

func VaccinesToResponses(vaccines []entity.Vaccine) []dto.VaccineResponse {
	responses := make([]dto.VaccineResponse, len(vaccines))
	for i, vaccine := range vaccines {
		responses[i] = *VaccineToResponse(&vaccine)
	}
	return responses
}

func CenterToResponse(center *entity.Center) *dto.CenterResponse {
	if center == nil {
		return nil
	}
	return &dto.CenterResponse{
		ID:        center.ID,
		Name:      center.Name,
		Address:   center.Address,
		CreatedAt: center.CreatedAt,
		UpdatedAt: center.UpdatedAt,
	}
}

func CentersToResponses(centers []entity.Center) []dto.CenterResponse {
	responses := make([]dto.CenterResponse, len(centers))
	for i, center := range centers {
		responses[i] = *CenterToResponse(&center)
	}
	return responses
}

func BatchToResponse(batch *entity.InventoryBatch) *dto.BatchResponse {
	if batch == nil {
		return nil
	}

	response := &dto.BatchResponse{
		ID:         batch.ID,
		VaccineID:  batch.VaccineID,
		BatchNo:    batch.BatchNo,
		Quantity:   batch.Quantity,
		ExpiryDate: batch.ExpiryDate,
		CreatedAt:  batch.CreatedAt,
		UpdatedAt:  batch.UpdatedAt,
	}

	if batch.Vaccine.ID != 0 {
		response.VaccineName = batch.Vaccine.Name
	}

	return response
}

func BatchesToResponses(batches []entity.InventoryBatch) []dto.BatchResponse {
	responses := make([]dto.BatchResponse, len(batches))
	for i, batch := range batches {
		responses[i] = *BatchToResponse(&batch)
	}
	return responses
}
