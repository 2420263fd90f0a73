package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type voteService struct {
	repo      ports.VoteRepository
	publisher ports.VotePublisher
	metrics   ports.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewVoteService(repo ports.VoteRepository, publisher ports.VotePublisher, metrics ports.Metrics, logger *slog.Logger) ports.VoteService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Vote records a ballot. Several ballots from the same email are all kept.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	if input.Email == "" || input.Choice == "" {
		s.metrics.VoteRejected("missing_fields")
		return nil, domain.ErrMissingVoteFields
	}

	choice := domain.Choice(input.Choice)
	if !choice.Valid() {
		s.metrics.VoteRejected("invalid_choice")
		return nil, domain.ErrInvalidChoice
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		Email:     input.Email,
		Pseudo:    input.Email,
		Choice:    choice,
		CreatedAt: domain.FormatTimestamp(s.now()),
	}

	if err := s.repo.SaveVote(ctx, vote); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to save vote: %w", err))
	}
	s.metrics.VoteRecorded(choice)
	s.logger.InfoContext(ctx, "New vote", "choice", choice, "email", vote.Email)

	if err := s.publisher.PublishVote(ctx, vote); err != nil {
		s.metrics.PublishFailed()
		s.logger.WarnContext(ctx, "failed to publish vote event", "vote_id", vote.ID, "error", err)
	}

	return vote, nil
}

func (s *voteService) ListVotes(ctx context.Context) ([]domain.VoteSummary, error) {
	votes, err := s.repo.ListVotes(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list votes: %w", err))
	}
	if votes == nil {
		votes = []domain.VoteSummary{}
	}
	return votes, nil
}

func (s *voteService) HasVoted(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, domain.ErrMissingEmailParam
	}

	hasVoted, err := s.repo.HasVoted(ctx, email)
	if err != nil {
		return false, domain.NewInternalError(fmt.Errorf("failed to check existing vote: %w", err))
	}
	return hasVoted, nil
}
