package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"patient-appointment-service/internal/domain/entity"
	"patient-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// newTestLogger returns a silenced logger for usecase tests
func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- MockAppointmentRepository ---

// Compile-time check to ensure MockAppointmentRepository implements AppointmentRepository
var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc        func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	UpdateByIDFunc    func(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (int64, error)
	FindRecentFunc    func(ctx context.Context, limit int) ([]entity.Appointment, error)
	CountByStatusFunc func(ctx context.Context) (map[entity.AppointmentStatus]int64, error)

	CreateCallCount        int32
	UpdateByIDCallCount    int32
	CountByStatusCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.AppointmentPatch) (int64, error) {
	atomic.AddInt32(&m.UpdateByIDCallCount, 1)
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, patch)
	}
	return 0, errors.New("UpdateByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error) {
	atomic.AddInt32(&m.CountByStatusCallCount, 1)
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[entity.AppointmentStatus]int64{}, nil
}

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	CreateFunc   func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	CreateCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// --- MockAuditLogRepository ---

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, log *entity.AuditLog) error

	CreateCallCount int32
	Created         []*entity.AuditLog
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	m.Created = append(m.Created, log)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	logs := make([]entity.AuditLog, len(m.Created))
	for i, log := range m.Created {
		logs[i] = *log
	}
	return logs, nil
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	for _, log := range m.Created {
		if log.ID == id {
			return log, nil
		}
	}
	return nil, nil
}
