package http

import (
	"net/http"

	"patient-appointment-service/internal/delivery/http/handler"
	"patient-appointment-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	physicianHandler   *handler.PhysicianHandler
	adminHandler       *handler.AdminHandler
	auditLogHandler    *handler.AuditLogHandler
	passkeyMiddleware  *middleware.PasskeyMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	physicianHandler *handler.PhysicianHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	passkeyMiddleware *middleware.PasskeyMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		physicianHandler:   physicianHandler,
		adminHandler:       adminHandler,
		auditLogHandler:    auditLogHandler,
		passkeyMiddleware:  passkeyMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient routes (public)
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Physician roster (public, read-only)
	api.HandleFunc("/physicians", r.physicianHandler.GetPhysicians).Methods(http.MethodGet)

	// Appointment routes (public: booking + success view)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Passkey verification (public - this is the gate's entry)
	api.HandleFunc("/admin/verify", r.adminHandler.VerifyPasskey).Methods(http.MethodPost)

	// Admin routes (passkey-guarded)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.passkeyMiddleware.Guard)

	admin.HandleFunc("/appointments", r.appointmentHandler.GetRecentAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/schedule", r.appointmentHandler.ScheduleAppointment).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
