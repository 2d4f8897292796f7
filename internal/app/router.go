package app

import (
	"net/http"

	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, auth *middleware.AuthMiddleware, reporter *telemetry.Reporter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(reporter.HTTPMiddleware())
	r.Use(middleware.Gzip(logger))

	// Public routes
	r.Get("/api/ping", h.Ping)
	r.Get("/l/{code}", h.Redirect)
	r.Get("/{code}", h.Redirect)

	// Link management - требует аутентификации
	r.Route("/api/links", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/", h.ListLinks)
		r.Post("/", h.CreateLink)
		r.Get("/suggest", h.SuggestShortCode)
		r.Patch("/{id}", h.UpdateLink)
		r.Delete("/{id}", h.DeleteLink)
	})

	return r
}
