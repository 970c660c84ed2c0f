package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/domain/entity"
	"patient-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientUsecase(patientRepo *MockPatientRepository, auditRepo *MockAuditLogRepository) PatientUsecase {
	log := newTestLogger()
	return NewPatientUsecase(log, patientRepo, service.NewAuditService(log, auditRepo))
}

func TestRegisterPatient_Success(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	auditRepo := &MockAuditLogRepository{}

	newID := uuid.New()
	patientRepo.CreateFunc = func(ctx context.Context, patient *entity.Patient) error {
		patient.ID = newID
		return nil
	}

	u := newPatientUsecase(patientRepo, auditRepo)

	result, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:  "John Doe",
		Email: "johndoe@example.com",
		Phone: "+15550100123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, int32(1), patientRepo.CreateCallCount)
	assert.Equal(t, newID, result.Patient.ID)
	assert.Equal(t, dto.DirectiveNavigate, result.Directive.Type)
	assert.Equal(t, fmt.Sprintf("/patients/%s/register", newID), result.Directive.Path)

	require.Len(t, auditRepo.Created, 1)
	assert.Equal(t, entity.AuditActionPatientRegister, auditRepo.Created[0].Action)
}

func TestRegisterPatient_DuplicateEmail(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	patientRepo.CreateFunc = func(ctx context.Context, patient *entity.Patient) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"}
	}

	u := newPatientUsecase(patientRepo, &MockAuditLogRepository{})

	result, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:  "John Doe",
		Email: "johndoe@example.com",
		Phone: "+15550100123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, result)
}

func TestRegisterPatient_PersistenceFailure(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	patientRepo.CreateFunc = func(ctx context.Context, patient *entity.Patient) error {
		return errors.New("connection reset")
	}

	u := newPatientUsecase(patientRepo, &MockAuditLogRepository{})

	result, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:  "John Doe",
		Email: "johndoe@example.com",
		Phone: "+15550100123",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, result)
}

func TestGetPatient_NotFound(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	patientRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
		return nil, nil
	}

	u := newPatientUsecase(patientRepo, &MockAuditLogRepository{})

	_, err := u.GetPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGetPatient_Success(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	patientID := uuid.New()
	patientRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id, Name: "John Doe", Email: "johndoe@example.com", Phone: "+15550100123"}, nil
	}

	u := newPatientUsecase(patientRepo, &MockAuditLogRepository{})

	patient, err := u.GetPatient(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t, patientID, patient.ID)
	assert.Equal(t, "John Doe", patient.Name)
}
