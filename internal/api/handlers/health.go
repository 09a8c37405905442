package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

//go:generate mockgen -destination ./mocks/health_mock.go . HealthService
type HealthService interface {
	Check(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewHealthHandler answers 503 while any dependency is unreachable.
func NewHealthHandler(
	svc HealthService,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Check(r.Context()); err != nil {
			slog.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, &healthResponse{
				Status: "unavailable",
				Error:  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, &healthResponse{Status: "ok"})
	})
}
