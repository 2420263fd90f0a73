package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *slog.Logger
}

func NewVoteHandler(service ports.VoteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

type voteRequest struct {
	Email  string `json:"email"`
	Choice string `json:"choice"`
}

type voteResponse struct {
	Status string       `json:"status"`
	Vote   *domain.Vote `json:"vote"`
}

type hasVotedResponse struct {
	Email    string `json:"email"`
	HasVoted bool   `json:"hasVoted"`
}

func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "Processing POST /vote")

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, "Erreur lors de l’insertion du vote", err)
		return
	}

	vote, err := h.service.Vote(r.Context(), ports.VoteInput{
		Email:  req.Email,
		Choice: req.Choice,
	})
	if err != nil {
		writeError(w, r, h.logger, "Erreur lors de l’insertion du vote", err)
		return
	}

	writeJSON(w, http.StatusCreated, voteResponse{Status: "saved", Vote: vote})
}

func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "Processing GET /votes")

	votes, err := h.service.ListVotes(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "Erreur lors de la récupération des votes", err)
		return
	}

	writeJSON(w, http.StatusOK, votes)
}

func (h *VoteHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "Processing GET /hasVoted")

	email := r.URL.Query().Get("email")
	hasVoted, err := h.service.HasVoted(r.Context(), email)
	if err != nil {
		writeError(w, r, h.logger, "Erreur lors de la vérification du vote", err)
		return
	}

	writeJSON(w, http.StatusOK, hasVotedResponse{Email: email, HasVoted: hasVoted})
}
