package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/go-chi/render"
)

const healthCheckTimeout = 2 * time.Second

// Health обрабатывает GET /healthz и проверяет доступность бд
func Health(checker ports.HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := checker.Ping(ctx); err != nil {
			logger.Error("health check failed", "error", err)
			respond(w, r, &Envelope{
				HTTPStatusCode: http.StatusServiceUnavailable,
				Status:         StatusError,
				Data:           render.M{"message": msgServiceUnavailable, "database": "down"},
			}, logger)
			return
		}

		respondSuccess(w, r, http.StatusOK, render.M{"database": "up"}, logger)
	}
}
