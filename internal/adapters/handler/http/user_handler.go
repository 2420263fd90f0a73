package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	logger  *slog.Logger
}

func NewUserHandler(service ports.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type createUserRequest struct {
	Email  string `json:"email"`
	Pseudo string `json:"pseudo"`
}

type createUserResponse struct {
	Status string       `json:"status"`
	User   *domain.User `json:"user"`
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "Processing POST /user")

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, "Erreur lors de l’insertion", err)
		return
	}

	user, err := h.service.Register(r.Context(), ports.RegisterUserInput{
		Email:  req.Email,
		Pseudo: req.Pseudo,
	})
	if err != nil {
		writeError(w, r, h.logger, "Erreur lors de l’insertion", err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{Status: "saved", User: user})
}
