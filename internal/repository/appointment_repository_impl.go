package repository

import (
	"context"
	"errors"

	"patient-appointment-service/internal/domain/entity"
	domainRepo "patient-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// UpdateByID applies the patch in a single UPDATE. Patient and user columns
// are never part of the patch, so an update cannot reassign an appointment.
func (r *appointmentRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (int64, error) {
	values := map[string]interface{}{
		"status": patch.Status,
	}
	if patch.PrimaryPhysician != nil {
		values["primary_physician"] = *patch.PrimaryPhysician
	}
	if patch.Schedule != nil {
		values["schedule"] = *patch.Schedule
	}
	if patch.CancellationReason != nil {
		values["cancellation_reason"] = *patch.CancellationReason
	}

	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(values)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Preload("Patient").
		Order("created_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error) {
	type statusCount struct {
		Status entity.AppointmentStatus
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[entity.AppointmentStatus]int64{
		entity.AppointmentStatusPending:   0,
		entity.AppointmentStatusScheduled: 0,
		entity.AppointmentStatusCancelled: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
