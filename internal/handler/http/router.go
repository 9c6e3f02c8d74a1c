package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(env string, JWTService jwt.Service, attendanceHandler AttendanceHandler, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/classify", attendanceHandler.Classify)
				r.Get("/daily", attendanceHandler.GetDaily)
				r.Get("/monthly", attendanceHandler.GetMonthly)
				r.Get("/rules", attendanceHandler.GetRules)
				r.Put("/rules", attendanceHandler.SaveRules)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/preview", payrollHandler.Preview)
				r.Get("/adjustments", payrollHandler.GetAdjustment)
				r.Put("/adjustments", payrollHandler.SaveAdjustment)
				r.Post("/loan-proposals", payrollHandler.ProposeLoanDeductions)
				r.Get("/records", payrollHandler.ListRecords)
				r.Get("/records/{employeeCode}", payrollHandler.GetRecord)
				r.Get("/summary", payrollHandler.GetSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/lock", payrollHandler.Lock)
					r.Post("/unlock", payrollHandler.Unlock)
					r.Post("/bulk-lock", payrollHandler.BulkLock)
					r.Post("/bulk-unlock", payrollHandler.BulkUnlock)
				})
			})
		})
	})
	return r
}
