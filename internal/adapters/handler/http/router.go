package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/metrics"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type Dependencies struct {
	Users   ports.UserService
	Votes   ports.VoteService
	Results ports.ResultsService
	Store   ports.DocumentStore
	// Metrics is optional; /metrics is only mounted when it is set.
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func NewHandler(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userHandler := NewUserHandler(deps.Users, logger)
	voteHandler := NewVoteHandler(deps.Votes, logger)
	resultsHandler := NewResultsHandler(deps.Results, logger)
	healthHandler := NewHealthHandler(deps.Store, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	if deps.Metrics != nil {
		r.Use(instrument(deps.Metrics))
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get("/health", healthHandler.Health)

	routes := func(r chi.Router) {
		r.Post("/user", userHandler.CreateUser)
		r.Post("/vote", voteHandler.Vote)
		r.Get("/votes", voteHandler.ListVotes)
		r.Get("/hasVoted", voteHandler.HasVoted)
		r.Get("/results", resultsHandler.GetResults)
	}
	r.Group(routes)
	r.Route("/api", routes)

	return r
}
