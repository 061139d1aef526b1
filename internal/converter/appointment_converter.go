package converter

import (
	"go-vaccination-clinic/internal/delivery/dto"
	"go-vaccination-clinic/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		VaccineID:       appointment.VaccineID,
		CenterID:        appointment.CenterID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		AssignedTo:      appointment.AssignedTo,
		DoseNo:          appointment.DoseNo,
		Note:            appointment.Note,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Joined names when the relations were preloaded
	if appointment.Vaccine.ID != 0 {
		response.VaccineName = appointment.Vaccine.Name
	}
	if appointment.Center.ID != 0 {
		response.CenterName = appointment.Center.Name
	}
	if appointment.Patient.ID != 0 {
		response.PatientName = appointment.Patient.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// VaccinationRecordToResponse converts a VaccinationRecord entity to its DTO
func VaccinationRecordToResponse(record *entity.VaccinationRecord) *dto.VaccinationRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.VaccinationRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		VaccineID:     record.VaccineID,
		DoseNo:        record.DoseNo,
		GivenOn:       record.GivenOn,
		GivenBy:       record.GivenBy,
		AppointmentID: record.AppointmentID,
	}

	if record.Patient.ID != 0 {
		response.PatientName = record.Patient.FullName
	}
	if record.Vaccine.ID != 0 {
		response.VaccineName = record.Vaccine.Name
	}
	if record.Issuer.Name != "" {
		response.IssuerName = record.Issuer.Name
	}

	return response
}

// VaccinationRecordsToResponses converts a slice of VaccinationRecord entities
func VaccinationRecordsToResponses(records []entity.VaccinationRecord) []dto.VaccinationRecordResponse {
	responses := make([]dto.VaccinationRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *VaccinationRecordToResponse(&record)
	}
	return responses
}
