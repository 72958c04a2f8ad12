package user

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/user-service/internal/http/handlers/health"
)

// RegisterRoutes регистрирует маршруты служебного HTTP-сервера.
func RegisterRoutes(r chi.Router, logger *slog.Logger, gatherer prometheus.Gatherer, checks map[string]health.Pinger) {
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Get("/healthz", health.New(logger, checks).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
