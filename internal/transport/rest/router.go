package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/homecare-staffing/internal/announcement"
	"github.com/frahmantamala/homecare-staffing/internal/application"
	"github.com/frahmantamala/homecare-staffing/internal/auth"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
	"github.com/frahmantamala/homecare-staffing/internal/intake"
	"github.com/frahmantamala/homecare-staffing/internal/transport/middleware"
	"github.com/frahmantamala/homecare-staffing/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the full HTTP surface. The careers form and the
// client-interest form are the only unauthenticated writes; review and
// employee management additionally require an administrator.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	applicationHandler *application.Handler,
	employeeHandler *employee.Handler,
	intakeHandler *intake.Handler,
	announcementHandler *announcement.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and UI at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public website forms
		r.Post("/applications", applicationHandler.Submit)
		r.Post("/client-interest", intakeHandler.Submit)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Authenticated staff surface
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/announcements", func(ar chi.Router) {
				ar.Get("/", announcementHandler.List)
				ar.Get("/{id}", announcementHandler.Get)
				ar.Post("/", announcementHandler.Create)
				ar.Post("/{id}/post", announcementHandler.Post)
				ar.Post("/{id}/repost", announcementHandler.Repost)
				ar.Post("/{id}/archive", announcementHandler.Archive)
			})

			// Administrator-only: review workflows and employee management
			pr.Group(func(adm chi.Router) {
				adm.Use(authHandler.RequireAdmin)

				adm.Route("/applications", func(appr chi.Router) {
					appr.Get("/", applicationHandler.List)
					appr.Get("/{id}", applicationHandler.Get)
					appr.Post("/{id}/hire", applicationHandler.Hire)
					appr.Post("/{id}/reject", applicationHandler.Reject)
				})

				adm.Route("/employees", func(er chi.Router) {
					er.Get("/", employeeHandler.Roster)
					er.Get("/{id}", employeeHandler.Detail)
					er.Post("/{id}/terminate", employeeHandler.Terminate)
					er.Post("/{id}/promote", employeeHandler.Promote)
				})

				adm.Route("/client-interest", func(ir chi.Router) {
					ir.Get("/", intakeHandler.List)
					ir.Get("/{id}", intakeHandler.Get)
					ir.Post("/{id}/review", intakeHandler.MarkReviewed)
				})
			})
		})
	})
}
