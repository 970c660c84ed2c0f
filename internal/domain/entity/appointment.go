package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentAction selects which lifecycle transition a submission requests
type AppointmentAction string

const (
	ActionCreate   AppointmentAction = "create"
	ActionSchedule AppointmentAction = "schedule"
	ActionCancel   AppointmentAction = "cancel"
)

// Operation is the persistence operation family a transition resolves to
type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
)

// ErrUnknownAction is returned for an action tag outside the transition table
var ErrUnknownAction = errors.New("unknown appointment action")

// Transition describes the outcome of an action: the status the appointment
// ends up in and the persistence operation needed to get there.
type Transition struct {
	Status    AppointmentStatus
	Operation Operation
}

// transitions is the single place that decides which status each action
// produces. The resulting status is never taken from caller input.
var transitions = map[AppointmentAction]Transition{
	ActionCreate:   {Status: AppointmentStatusPending, Operation: OperationInsert},
	ActionSchedule: {Status: AppointmentStatusScheduled, Operation: OperationUpdate},
	ActionCancel:   {Status: AppointmentStatusCancelled, Operation: OperationUpdate},
}

// TransitionFor resolves an action into its transition. Scheduled and
// cancelled are terminal; no action leads out of them, so the table only
// keys on the action tag.
func TransitionFor(action AppointmentAction) (Transition, error) {
	t, ok := transitions[action]
	if !ok {
		return Transition{}, ErrUnknownAction
	}
	return t, nil
}

// Appointment represents a patient appointment request with a physician
type Appointment struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	UserID             uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	PrimaryPhysician   string            `gorm:"type:varchar(100);not null" json:"primary_physician"`
	Schedule           time.Time         `gorm:"not null;index" json:"schedule"`
	Status             AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason             string            `gorm:"type:text" json:"reason,omitempty"`
	Note               string            `gorm:"type:text" json:"note,omitempty"`
	CancellationReason string            `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting an admin decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsScheduled checks if the appointment has been confirmed
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// AppointmentPatch is the update payload applied by schedule/cancel actions.
// PatientID and UserID are deliberately absent: they are immutable after
// creation and an update can never touch them.
type AppointmentPatch struct {
	PrimaryPhysician   *string
	Schedule           *time.Time
	Status             AppointmentStatus
	CancellationReason *string
}
