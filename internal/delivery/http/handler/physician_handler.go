package handler

import (
	"net/http"

	"patient-appointment-service/internal/converter"
	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/service"
	"patient-appointment-service/pkg/response"
)

type PhysicianHandler struct {
	rosterService service.RosterService
}

func NewPhysicianHandler(rosterService service.RosterService) *PhysicianHandler {
	return &PhysicianHandler{
		rosterService: rosterService,
	}
}

// GetPhysicians serves the static roster in its supplied order
func (h *PhysicianHandler) GetPhysicians(w http.ResponseWriter, r *http.Request) {
	physicians := converter.PhysiciansToResponses(h.rosterService.List())

	response.Success(w, http.StatusOK, "Physicians retrieved successfully", dto.PhysicianListResponse{
		Physicians: physicians,
		Total:      len(physicians),
	})
}
