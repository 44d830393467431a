package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/socialnet/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check.
// db может быть nil, тогда проверяется только сам процесс.
func NewHealthHandler(logger *slog.Logger, version string, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// Health обрабатывает GET /api/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := http.StatusOK
	resp := api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check: storage unavailable", slog.Any("error", err))
			status = http.StatusServiceUnavailable
			resp.Status = "unavailable"
		}
	}

	if err := WriteJSON(w, status, resp); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response", slog.Any("error", err))
	}
}
