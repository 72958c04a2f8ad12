// Package health отдаёт состояние зависимостей сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-service/internal/http/response"
	"github.com/magabrotheeeer/user-service/internal/lib/sl"
)

const checkTimeout = 2 * time.Second

// Pinger зависимость, доступность которой можно проверить.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler проверяет все зарегистрированные зависимости.
type Handler struct {
	log    *slog.Logger
	checks map[string]Pinger
}

// New создаёт обработчик. checks сопоставляет имя зависимости и её проверку.
func New(log *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"
	log := h.log.With(sl.Op(op))

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	statuses := make(map[string]string, len(h.checks))
	healthy := true
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			log.Warn("dependency is unavailable", slog.String("dependency", name), sl.Err(err))
			statuses[name] = "unavailable"
			healthy = false
			continue
		}
		statuses[name] = "ok"
	}

	if !healthy {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response.ErrorWithData("service is unhealthy", statuses))
		return
	}
	render.JSON(w, r, response.OKWithData(statuses))
}
