package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"patient-appointment-service/internal/converter"
	"patient-appointment-service/internal/delivery/dto"
	"patient-appointment-service/internal/domain/entity"
	"patient-appointment-service/internal/domain/repository"
	"patient-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidScheduleDate = errors.New("invalid schedule date, use RFC3339 format")
)

const (
	// statusCountsCacheKey caches the admin dashboard per-status counts.
	// Invalidated after every successful mutation.
	statusCountsCacheKey = "appointments:status_counts"
	statusCountsCacheTTL = 30 * time.Second

	// recentAppointmentsLimit bounds the admin dashboard listing
	recentAppointmentsLimit = 100
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentSubmissionResponse, error)
	ScheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentSubmissionResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentSubmissionResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetRecentAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	rosterService   service.RosterService
	auditService    service.AuditService
	redisClient     *redis.Client
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	rosterService service.RosterService,
	auditService service.AuditService,
	redisClient *redis.Client,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		rosterService:   rosterService,
		auditService:    auditService,
		redisClient:     redisClient,
	}
}

// CreateAppointment books a new appointment. The status is forced to the
// transition table's result for the create action, never taken from the
// caller. Success returns a navigate directive to the booking success view.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentSubmissionResponse, error) {
	schedule, err := time.Parse(time.RFC3339, req.Schedule)
	if err != nil {
		return nil, ErrInvalidScheduleDate
	}

	transition, err := entity.TransitionFor(entity.ActionCreate)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:        req.PatientID,
		UserID:           req.UserID,
		PrimaryPhysician: req.PrimaryPhysician,
		Schedule:         schedule,
		Status:           transition.Status,
		Reason:           req.Reason,
		Note:             req.Note,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.afterMutation(ctx, &req.UserID, entity.AuditActionAppointmentCreate, appointment.ID, nil, appointment)

	u.log.Infof("Appointment created: id=%s, patient=%s, physician=%s", appointment.ID, req.PatientID, req.PrimaryPhysician)

	return &dto.AppointmentSubmissionResponse{
		Appointment: converter.AppointmentToResponse(appointment, u.physicianImage(appointment.PrimaryPhysician)),
		Directive: dto.UIDirective{
			Type: dto.DirectiveNavigate,
			Path: fmt.Sprintf("/patients/%s/new-appointment/success?appointmentId=%s", req.UserID, appointment.ID),
		},
	}, nil
}

// ScheduleAppointment confirms a pending appointment. Patient and user
// references are never part of the update payload.
func (u *appointmentUsecase) ScheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentSubmissionResponse, error) {
	schedule, err := time.Parse(time.RFC3339, req.Schedule)
	if err != nil {
		return nil, ErrInvalidScheduleDate
	}

	transition, err := entity.TransitionFor(entity.ActionSchedule)
	if err != nil {
		return nil, err
	}

	patch := entity.AppointmentPatch{
		PrimaryPhysician: &req.PrimaryPhysician,
		Schedule:         &schedule,
		Status:           transition.Status,
	}

	rows, err := u.appointmentRepo.UpdateByID(ctx, appointmentID, patch)
	if err != nil {
		u.log.Errorf("Failed to schedule appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.afterMutation(ctx, nil, entity.AuditActionAppointmentSchedule, appointmentID, nil, patch)

	u.log.Infof("Appointment scheduled: id=%s, physician=%s", appointmentID, req.PrimaryPhysician)

	return &dto.AppointmentSubmissionResponse{
		Directive: dto.UIDirective{Type: dto.DirectiveCloseDialogRefresh},
	}, nil
}

// CancelAppointment rejects an appointment, preserving the caller's
// cancellation reason verbatim.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentSubmissionResponse, error) {
	transition, err := entity.TransitionFor(entity.ActionCancel)
	if err != nil {
		return nil, err
	}

	patch := entity.AppointmentPatch{
		Status:             transition.Status,
		CancellationReason: &req.CancellationReason,
	}

	rows, err := u.appointmentRepo.UpdateByID(ctx, appointmentID, patch)
	if err != nil {
		u.log.Errorf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.afterMutation(ctx, nil, entity.AuditActionAppointmentCancel, appointmentID, nil, patch)

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)

	return &dto.AppointmentSubmissionResponse{
		Directive: dto.UIDirective{Type: dto.DirectiveCloseDialogRefresh},
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment, u.physicianImage(appointment.PrimaryPhysician)), nil
}

// GetRecentAppointments backs the admin dashboard: recent appointments plus
// per-status counts. Counts are served from a short-lived redis cache.
func (u *appointmentUsecase) GetRecentAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindRecent(ctx, recentAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent appointments: %+v", err)
		return nil, err
	}

	counts, err := u.statusCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *converter.AppointmentToResponse(&appointments[i], u.physicianImage(appointments[i].PrimaryPhysician))
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
		Counts:       counts,
	}, nil
}

// statusCounts reads the per-status counts from redis, falling back to the
// database on a miss. Cache failures are non-fatal.
func (u *appointmentUsecase) statusCounts(ctx context.Context) (dto.StatusCounts, error) {
	cached, err := u.redisClient.Get(ctx, statusCountsCacheKey).Result()
	if err == nil {
		var counts dto.StatusCounts
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return counts, nil
		}
		u.log.Warnf("Failed to decode cached status counts, recomputing: %+v", err)
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read status counts cache (non-fatal): %+v", err)
	}

	byStatus, err := u.appointmentRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return dto.StatusCounts{}, err
	}

	counts := dto.StatusCounts{
		Pending:   byStatus[entity.AppointmentStatusPending],
		Scheduled: byStatus[entity.AppointmentStatusScheduled],
		Cancelled: byStatus[entity.AppointmentStatusCancelled],
	}

	if payload, err := json.Marshal(counts); err == nil {
		if err := u.redisClient.Set(ctx, statusCountsCacheKey, payload, statusCountsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache status counts (non-fatal): %+v", err)
		}
	}

	return counts, nil
}

// afterMutation records the audit trail entry and drops the counts cache.
// Both are best-effort: a failure here never fails the mutation itself.
func (u *appointmentUsecase) afterMutation(ctx context.Context, userID *uuid.UUID, action string, appointmentID uuid.UUID, oldValue, newValue interface{}) {
	if action == entity.AuditActionAppointmentCreate {
		_ = u.auditService.LogCreate(ctx, userID, action, "appointment", appointmentID.String(), newValue)
	} else {
		_ = u.auditService.LogUpdate(ctx, userID, action, "appointment", appointmentID.String(), oldValue, newValue)
	}

	if err := u.redisClient.Del(ctx, statusCountsCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to invalidate status counts cache (non-fatal): %+v", err)
	}
}

// physicianImage resolves the roster image for display. Unknown names are
// not an error; the appointment is shown without an image.
func (u *appointmentUsecase) physicianImage(name string) string {
	if physician, ok := u.rosterService.Find(name); ok {
		return physician.Image
	}
	return ""
}
