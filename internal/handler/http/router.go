package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-erp/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth           AuthHandler
	Attendance     AttendanceHandler
	AttendanceRule AttendanceRuleHandler
	Holiday        HolidayHandler
	Leave          LeaveHandler
	Loan           LoanHandler
	Salary         SalaryHandler
	Payroll        PayrollHandler
	Account        AccountHandler
	Employee       EmployeeHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/{employeeID}/clock", h.Attendance.Clock)
				r.Get("/{employeeID}/evaluate-day", h.Attendance.EvaluateDay)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/attendance-rules", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.AttendanceRule.Create)
				r.Get("/", h.AttendanceRule.List)
				r.Put("/{id}", h.AttendanceRule.Update)
				r.Delete("/{id}", h.AttendanceRule.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/loans", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Loan.Create)
				r.Get("/", h.Loan.List)
				r.Get("/employee/{employeeID}", h.Loan.ListByEmployee)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Salary.Create)
				r.Get("/", h.Salary.List)
				r.Get("/{id}", h.Salary.Get)
				r.Put("/{id}", h.Salary.Update)
				r.Delete("/{id}", h.Salary.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/cycles/{year}/{month}/run", h.Payroll.RunCycle)
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Account.CreateEntry)
				r.Get("/", h.Account.List)
				r.Get("/{employeeID}/statement", h.Account.GetStatement)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})
		})
	})

	return r
}
