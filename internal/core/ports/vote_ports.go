package ports

import (
	"context"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type VoteRepository interface {
	SaveVote(ctx context.Context, vote *domain.Vote) error
	ListVotes(ctx context.Context) ([]domain.VoteSummary, error)
	// ListChoices returns every vote with only its Choice populated.
	ListChoices(ctx context.Context) ([]domain.Vote, error)
	HasVoted(ctx context.Context, email string) (bool, error)
}

type VoteInput struct {
	Email  string
	Choice string
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Vote, error)
	ListVotes(ctx context.Context) ([]domain.VoteSummary, error)
	HasVoted(ctx context.Context, email string) (bool, error)
}

// VotePublisher forwards accepted votes to an event sink.
type VotePublisher interface {
	PublishVote(ctx context.Context, vote *domain.Vote) error
	Close() error
}
