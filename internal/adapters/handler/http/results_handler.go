package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
	logger  *slog.Logger
}

func NewResultsHandler(service ports.ResultsService, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "Processing GET /results")

	results, err := h.service.Results(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "Erreur lors du calcul des résultats", err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
