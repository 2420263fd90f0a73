package document

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type voteRepository struct {
	store ports.DocumentStore
}

func NewVoteRepository(store ports.DocumentStore) ports.VoteRepository {
	return &voteRepository{
		store: store,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	doc := ports.Document{
		"id":        vote.ID.String(),
		"email":     vote.Email,
		"pseudo":    vote.Pseudo,
		"choice":    string(vote.Choice),
		"createdAt": vote.CreatedAt,
	}
	if err := r.store.Insert(ctx, VotesCollection, vote.Email, doc); err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) ListVotes(ctx context.Context) ([]domain.VoteSummary, error) {
	docs, err := r.store.Query(ctx, VotesCollection, ports.Query{
		Fields: []string{"email", "pseudo", "choice"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	votes := make([]domain.VoteSummary, 0, len(docs))
	for _, doc := range docs {
		votes = append(votes, domain.VoteSummary{
			Email:  stringField(doc, "email"),
			Pseudo: stringField(doc, "pseudo"),
			Choice: stringField(doc, "choice"),
		})
	}
	return votes, nil
}

func (r *voteRepository) ListChoices(ctx context.Context) ([]domain.Vote, error) {
	docs, err := r.store.Query(ctx, VotesCollection, ports.Query{
		Fields: []string{"choice"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list choices: %w", err)
	}

	votes := make([]domain.Vote, 0, len(docs))
	for _, doc := range docs {
		votes = append(votes, domain.Vote{Choice: domain.Choice(stringField(doc, "choice"))})
	}
	return votes, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, email string) (bool, error) {
	docs, err := r.store.Query(ctx, VotesCollection, ports.Query{
		Fields: []string{"id"},
		Where:  []ports.Condition{ports.Eq("email", email)},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return len(docs) > 0, nil
}
