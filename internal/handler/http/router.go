package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/config"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	clockEventHandler ClockEventHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
	masterHandler MasterHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "geoattend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock", clockEventHandler.Clock)
				r.Get("/history", reportHandler.History)

				// Admin, HR and manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/events", clockEventHandler.Monitor)
					r.Post("/events", clockEventHandler.CreateManual)
					r.Put("/events/{id}", clockEventHandler.Update)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/dashboard/summary", dashboardHandler.Summary)
				r.Get("/reports/monthly", reportHandler.MonthlyExport)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)

				// Admin and HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
				})
			})

			r.Route("/work-sites", func(r chi.Router) {
				r.Get("/", masterHandler.ListWorkSites)
				r.Get("/{id}", masterHandler.GetWorkSite)

				// Admin and HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Post("/", masterHandler.CreateWorkSite)
					r.Put("/{id}", masterHandler.UpdateWorkSite)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Get("/{id}", masterHandler.GetShift)

				// Admin and HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Post("/", masterHandler.CreateShift)
					r.Put("/{id}", masterHandler.UpdateShift)
				})
			})
		})
	})
	return r
}
