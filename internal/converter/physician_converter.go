package converter

import (
	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/service"
)

// PhysiciansToResponses converts roster entries to PhysicianResponse DTOs
func PhysiciansToResponses(physicians []service.Physician) []dto.PhysicianResponse {
	responses := make([]dto.PhysicianResponse, len(physicians))
	for i, physician := range physicians {
		responses[i] = dto.PhysicianResponse{
			Name:  physician.Name,
			Image: physician.Image,
		}
	}
	return responses
}
