package repository

import (
	"context"

	"patient-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// UpdateByID applies the patch to a single appointment and returns the
	// number of affected rows (0 when the id does not exist).
	UpdateByID(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error)
	CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error)
}
