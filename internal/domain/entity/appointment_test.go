package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionFor(t *testing.T) {
	tests := []struct {
		name       string
		action     AppointmentAction
		wantStatus AppointmentStatus
		wantOp     Operation
	}{
		{"create resolves to pending insert", ActionCreate, AppointmentStatusPending, OperationInsert},
		{"schedule resolves to scheduled update", ActionSchedule, AppointmentStatusScheduled, OperationUpdate},
		{"cancel resolves to cancelled update", ActionCancel, AppointmentStatusCancelled, OperationUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := TransitionFor(tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, tr.Status)
			assert.Equal(t, tt.wantOp, tr.Operation)
		})
	}
}

func TestTransitionFor_UnknownAction(t *testing.T) {
	_, err := TransitionFor(AppointmentAction("reopen"))
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = TransitionFor(AppointmentAction(""))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestAppointmentStatusHelpers(t *testing.T) {
	appt := &Appointment{Status: AppointmentStatusPending}
	assert.True(t, appt.IsPending())
	assert.False(t, appt.IsScheduled())
	assert.False(t, appt.IsCancelled())

	appt.Status = AppointmentStatusScheduled
	assert.True(t, appt.IsScheduled())

	appt.Status = AppointmentStatusCancelled
	assert.True(t, appt.IsCancelled())
}
