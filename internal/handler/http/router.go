package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/config"
	"github.com/nimbus-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	advanceHandler AdvanceHandler,
	payrollHandler PayrollHandler,
	portalHandler PortalHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/login", func(r chi.Router) {
				r.Post("/admin", authHandler.AdminLogin)
				r.Post("/employee", authHandler.EmployeeLogin)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetEmployee)
						r.Put("/", employeeHandler.UpdateEmployee)
						r.Delete("/", employeeHandler.DeleteEmployee)
					})
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListEntries)
					r.Post("/", attendanceHandler.RecordDirect)
					r.Put("/{id}", attendanceHandler.UpdateEntry)
					r.Delete("/{id}", attendanceHandler.DeleteEntry)
					r.Post("/mark-extra-days", attendanceHandler.MarkExtraDay)
					r.Route("/requests", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListPendingRequests)
						r.Put("/{id}/approve", attendanceHandler.ApproveRequest)
					})
				})

				r.Route("/bonuses", func(r chi.Router) {
					r.Get("/", adjustmentHandler.ListBonuses)
					r.Post("/", adjustmentHandler.CreateBonus)
					r.Put("/{id}/approval", adjustmentHandler.SetBonusApproval)
					r.Delete("/{id}", adjustmentHandler.DeleteBonus)
				})

				r.Route("/deductions", func(r chi.Router) {
					r.Get("/", adjustmentHandler.ListDeductions)
					r.Post("/", adjustmentHandler.CreateDeduction)
					r.Delete("/{id}", adjustmentHandler.DeleteDeduction)
				})

				r.Route("/extra-days", func(r chi.Router) {
					r.Get("/", adjustmentHandler.ListExtraDays)
					r.Post("/", adjustmentHandler.CreateExtraDay)
					r.Delete("/{id}", adjustmentHandler.DeleteExtraDay)
				})

				r.Route("/advance-salary", func(r chi.Router) {
					r.Get("/", advanceHandler.ListAll)
					r.Put("/{id}/decision", advanceHandler.Decide)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.List)
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/summary", payrollHandler.Summary)
					r.Put("/{id}/status", payrollHandler.UpdateStatus)
				})
			})

			// Employee self-service
			r.Route("/portal", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)

				r.Route("/profile", func(r chi.Router) {
					r.Get("/", portalHandler.GetProfile)
					r.Put("/", portalHandler.UpdateProfile)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", portalHandler.ListMyAttendance)
					r.Post("/", portalHandler.SubmitAttendance)
				})

				r.Get("/bonuses", portalHandler.ListMyBonuses)
				r.Get("/deductions", portalHandler.ListMyDeductions)

				r.Route("/advance-salary", func(r chi.Router) {
					r.Get("/", portalHandler.ListMyAdvances)
					r.Post("/", portalHandler.CreateAdvance)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", portalHandler.ListMyPayroll)
					r.Get("/payslip", portalHandler.GetPayslip)
				})
			})
		})
	})
	return r
}
