package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
//
// One variant per lifecycle action, each carrying only the fields its action
// requires. The target status is never part of a request; it is derived from
// the action alone.

type CreateAppointmentRequest struct {
	PatientID        uuid.UUID `json:"patient_id" validate:"required"`
	UserID           uuid.UUID `json:"user_id" validate:"required"`
	PrimaryPhysician string    `json:"primary_physician" validate:"required"`
	Schedule         string    `json:"schedule" validate:"required"` // RFC3339
	Reason           string    `json:"reason" validate:"required"`
	Note             string    `json:"note" validate:"omitempty"`
}

type ScheduleAppointmentRequest struct {
	PrimaryPhysician string `json:"primary_physician" validate:"required"`
	Schedule         string `json:"schedule" validate:"required"` // RFC3339
	Reason           string `json:"reason" validate:"omitempty"`
	Note             string `json:"note" validate:"omitempty"`
}

type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellation_reason" validate:"required"`
}

// Response DTOs

// UIDirective instructs the caller which UI transition to perform after a
// successful mutation. It is a returned value, never executed server-side.
type UIDirective struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// UIDirective types
const (
	DirectiveNavigate           = "navigate"
	DirectiveCloseDialogRefresh = "close_dialog_refresh"
)

type AppointmentResponse struct {
	ID                 uuid.UUID        `json:"id"`
	PatientID          uuid.UUID        `json:"patient_id"`
	UserID             uuid.UUID        `json:"user_id"`
	PrimaryPhysician   string           `json:"primary_physician"`
	PhysicianImage     string           `json:"physician_image,omitempty"`
	Schedule           time.Time        `json:"schedule"`
	Status             string           `json:"status"`
	Reason             string           `json:"reason,omitempty"`
	Note               string           `json:"note,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	Patient            *PatientResponse `json:"patient,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type AppointmentSubmissionResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Directive   UIDirective          `json:"directive"`
}

type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Scheduled int64 `json:"scheduled"`
	Cancelled int64 `json:"cancelled"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Counts       StatusCounts          `json:"counts"`
}
