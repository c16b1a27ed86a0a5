package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"facegate/internal/facegate/errorlog"
	"facegate/internal/facegate/service"
)

type Dependencies struct {
	Logger *log.Logger
	Addr   string

	Employees    *service.EmployeeService
	Enrollment   *service.EnrollmentService
	Verification *service.VerificationService
	Ledger       *service.LedgerService
	Shifts       *service.ShiftService
	ErrorLog     errorlog.Logger

	// Extra CORS origins beside localhost.
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     *log.Logger

	employees    *service.EmployeeService
	enrollment   *service.EnrollmentService
	verification *service.VerificationService
	ledger       *service.LedgerService
	shifts       *service.ShiftService
	errorLog     errorlog.Logger
}

func NewServer(d Dependencies) *Server {
	s := &Server{
		logger:       d.Logger,
		employees:    d.Employees,
		enrollment:   d.Enrollment,
		verification: d.Verification,
		ledger:       d.Ledger,
		shifts:       d.Shifts,
		errorLog:     d.ErrorLog,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware(d.AllowedOrigins))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/employees", s.handleListEmployees)
		r.Post("/employees", s.handleCreateEmployee)
		r.Get("/employees/{id}", s.handleGetEmployee)
		r.Patch("/employees/{id}", s.handleUpdateEmployee)
		r.Delete("/employees/{id}", s.handleDeleteEmployee)
		r.Post("/employees/{id}/photo", s.handleEnrollPhoto)

		r.Get("/hours", s.handleListHours)
		r.Post("/hours/start", s.handleStartShift)
		r.Post("/hours/end", s.handleEndShift)

		r.Post("/employee/check_qr", s.handleCheckQR)
		r.Post("/face/verify", s.handleVerifyFace)
		r.Post("/access/ack", s.handleAccessAck)
		r.Get("/access_logs", s.handleListAccessLogs)
		r.Post("/log_error", s.handleLogError)
	})

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           loggingMiddleware(d.Logger, r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
