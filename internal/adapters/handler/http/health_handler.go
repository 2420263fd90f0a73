package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type HealthHandler struct {
	store  ports.DocumentStore
	logger *slog.Logger
}

func NewHealthHandler(store ports.DocumentStore, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(r.Context(), "document store ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
