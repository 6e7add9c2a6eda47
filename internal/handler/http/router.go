package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/patpaw111/web-absn/internal/handler/http/middleware"
	"github.com/patpaw111/web-absn/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	userHandler UserHandler,
	shiftHandler ShiftHandler,
	holidayHandler HolidayHandler,
	attendanceHandler AttendanceHandler,
	performanceHandler PerformanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "web-absn"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Admin-facing surface; every route requires an admin access token.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListShifts)
				r.Post("/", shiftHandler.CreateShift)

				r.Route("/assignments", func(r chi.Router) {
					r.Get("/", shiftHandler.ListAssignments)
					r.Post("/", shiftHandler.CreateAssignment)
					r.Delete("/{id}", shiftHandler.DeleteAssignment)
				})

				r.Put("/{id}", shiftHandler.UpdateShift)
				r.Delete("/{id}", shiftHandler.DeleteShift)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Post("/", holidayHandler.Create)
				r.Delete("/{id}", holidayHandler.Delete)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Create)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/report", performanceHandler.Report)
				r.Get("/recap/daily", performanceHandler.DailyRecap)
				r.Post("/recap/generate", performanceHandler.GenerateRecap)
			})

			r.Get("/dashboard/summary", performanceHandler.Dashboard)
		})
	})

	return r
}
