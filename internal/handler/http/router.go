package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontofacil/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	userHandler UserHandler,
	timeEntryHandler TimeEntryHandler,
	editRequestHandler EditRequestHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-facil"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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

			r.Route("/users", func(r chi.Router) {
				r.Put("/me/password", userHandler.ChangeMyPassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Patch("/{id}", userHandler.Update)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", timeEntryHandler.ClockIn)
				r.Post("/{id}/clock-out", timeEntryHandler.ClockOut)
				r.Get("/my", timeEntryHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", timeEntryHandler.ListAll)
				})
			})

			r.Route("/edit-requests", func(r chi.Router) {
				r.Post("/", editRequestHandler.Create)
				r.Get("/my", editRequestHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", editRequestHandler.ListAll)
					r.Post("/{id}/decision", editRequestHandler.Decide)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/summary", reportHandler.UserSummaries)
			})
		})
	})
	return r
}
