package converter

import (
	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// physicianImage is resolved against the roster at read time; it is empty when
// the stored physician name is not on the roster.
func AppointmentToResponse(appointment *entity.Appointment, physicianImage string) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                 appointment.ID,
		PatientID:          appointment.PatientID,
		UserID:             appointment.UserID,
		PrimaryPhysician:   appointment.PrimaryPhysician,
		PhysicianImage:     physicianImage,
		Schedule:           appointment.Schedule,
		Status:             string(appointment.Status),
		Reason:             appointment.Reason,
		Note:               appointment.Note,
		CancellationReason: appointment.CancellationReason,
		CreatedAt:          appointment.CreatedAt,
		UpdatedAt:          appointment.UpdatedAt,
	}

	// Include patient info if preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}
