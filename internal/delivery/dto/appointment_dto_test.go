package dto_test

import (
	"testing"

	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentRequest_RequiredFields(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(&dto.CreateAppointmentRequest{})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs, "PatientID")
	assert.Contains(t, errs, "UserID")
	assert.Contains(t, errs, "PrimaryPhysician")
	assert.Contains(t, errs, "Schedule")
	assert.Contains(t, errs, "Reason")
	assert.NotContains(t, errs, "Note")
}

func TestCreateAppointmentRequest_MissingReasonReportedByName(t *testing.T) {
	v := validator.NewValidator()

	req := &dto.CreateAppointmentRequest{
		PatientID:        uuid.New(),
		UserID:           uuid.New(),
		PrimaryPhysician: "John Green",
		Schedule:         "2026-09-15T10:00:00Z",
		Note:             "prefers morning slots",
	}

	err := v.Validate(req)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Reason is required", errs["Reason"])
}

func TestCreateAppointmentRequest_Valid(t *testing.T) {
	v := validator.NewValidator()

	req := &dto.CreateAppointmentRequest{
		PatientID:        uuid.New(),
		UserID:           uuid.New(),
		PrimaryPhysician: "John Green",
		Schedule:         "2026-09-15T10:00:00Z",
		Reason:           "Annual checkup",
	}

	assert.NoError(t, v.Validate(req))
}

func TestScheduleAppointmentRequest_ReasonIsOptional(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(&dto.ScheduleAppointmentRequest{})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs, "PrimaryPhysician")
	assert.Contains(t, errs, "Schedule")
	assert.NotContains(t, errs, "Reason")
	assert.NotContains(t, errs, "Note")

	assert.NoError(t, v.Validate(&dto.ScheduleAppointmentRequest{
		PrimaryPhysician: "Leila Cameron",
		Schedule:         "2026-09-20T09:30:00Z",
	}))
}

func TestCancelAppointmentRequest_RequiresCancellationReason(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(&dto.CancelAppointmentRequest{})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "CancellationReason is required", errs["CancellationReason"])

	assert.NoError(t, v.Validate(&dto.CancelAppointmentRequest{
		CancellationReason: "Patient requested a different physician",
	}))
}
