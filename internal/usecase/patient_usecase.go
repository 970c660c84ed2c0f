package usecase

import (
	"context"
	"errors"
	"fmt"

	"patient-appointment-service/internal/converter"
	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/domain/entity"
	"patient-appointment-service/internal/domain/repository"
	"patient-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientRegistrationResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// RegisterPatient creates a patient record and returns a navigate directive
// pointing at the registration detail step for the new patient.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientRegistrationResponse, error) {
	patient := &entity.Patient{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Errorf("Failed to create patient: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, &patient.ID, entity.AuditActionPatientRegister, "patient", patient.ID.String(), patient)

	u.log.Infof("Patient registered: id=%s, email=%s", patient.ID, patient.Email)

	return &dto.PatientRegistrationResponse{
		Patient: converter.PatientToResponse(patient),
		Directive: dto.UIDirective{
			Type: dto.DirectiveNavigate,
			Path: fmt.Sprintf("/patients/%s/register", patient.ID),
		},
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// isUniqueViolation checks for PostgreSQL error code 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
