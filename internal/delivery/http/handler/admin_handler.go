package handler

import (
	"encoding/json"
	"net/http"

	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/delivery/http/middleware"
	"patient-appointment-service/pkg/passkey"
	"patient-appointment-service/pkg/response"
	"patient-appointment-service/pkg/validator"
)

type AdminHandler struct {
	gate      *passkey.Gate
	validator *validator.CustomValidator
}

func NewAdminHandler(gate *passkey.Gate, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		gate:      gate,
		validator: validator,
	}
}

// VerifyPasskey runs the passkey gate for an admin candidate. On acceptance
// the obfuscated token is persisted to the caller's cookie jar and a navigate
// directive to the admin view is returned. On rejection only a generic
// message is surfaced; the expected value is never revealed.
func (h *AdminHandler) VerifyPasskey(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPasskeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	store := middleware.NewCookieStore(w, r)
	if err := h.gate.Admit(store, req.Passkey); err != nil {
		response.Unauthorized(w, "Invalid passkey, please try again")
		return
	}

	response.Success(w, http.StatusOK, "Passkey verified successfully", dto.UIDirective{
		Type: dto.DirectiveNavigate,
		Path: "/admin",
	})
}
