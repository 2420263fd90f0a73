package document

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

func newVote(email string, choice domain.Choice) *domain.Vote {
	return &domain.Vote{
		ID:        uuid.New(),
		Email:     email,
		Pseudo:    email,
		Choice:    choice,
		CreatedAt: "2025-05-02T08:11:12.345678Z",
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewUserRepository(store)

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", Pseudo: "alice", CreatedAt: "2025-05-02T08:11:12.345678Z"}
	require.NoError(t, repo.Create(ctx, user))

	docs, err := store.Query(ctx, UsersCollection, ports.Query{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, ports.Document{
		"id":        user.ID.String(),
		"email":     "alice@example.com",
		"pseudo":    "alice",
		"createdAt": "2025-05-02T08:11:12.345678Z",
	}, docs[0])
}

func TestVoteRepository_ListVotes(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository(memory.NewStore())

	votes, err := repo.ListVotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, votes)

	require.NoError(t, repo.SaveVote(ctx, newVote("a@example.com", domain.ChoiceYes)))
	require.NoError(t, repo.SaveVote(ctx, newVote("b@example.com", domain.ChoiceNo)))

	votes, err = repo.ListVotes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.VoteSummary{
		{Email: "a@example.com", Pseudo: "a@example.com", Choice: "Oui"},
		{Email: "b@example.com", Pseudo: "b@example.com", Choice: "Non"},
	}, votes)
}

func TestVoteRepository_ListChoices_KeepsUnknownValues(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewVoteRepository(store)

	require.NoError(t, repo.SaveVote(ctx, newVote("a@example.com", domain.ChoiceYes)))
	require.NoError(t, store.Insert(ctx, VotesCollection, "legacy@example.com", ports.Document{
		"id":     uuid.NewString(),
		"email":  "legacy@example.com",
		"choice": "Peut-être",
	}))
	require.NoError(t, store.Insert(ctx, VotesCollection, "broken@example.com", ports.Document{
		"id":    uuid.NewString(),
		"email": "broken@example.com",
	}))

	votes, err := repo.ListChoices(ctx)
	require.NoError(t, err)
	assert.Len(t, votes, 3)
	assert.Equal(t, domain.Results{domain.ChoiceYes: 1, domain.ChoiceNo: 0}, domain.Tally(votes))
}

func TestVoteRepository_HasVoted(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository(memory.NewStore())

	voted, err := repo.HasVoted(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, voted)

	require.NoError(t, repo.SaveVote(ctx, newVote("a@example.com", domain.ChoiceNo)))

	voted, err = repo.HasVoted(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, voted)

	voted, err = repo.HasVoted(ctx, "b@example.com")
	require.NoError(t, err)
	assert.False(t, voted)
}

type failingStore struct {
	memory.Store
}

func (*failingStore) Insert(context.Context, string, string, ports.Document) error {
	return errors.New("store unavailable")
}

func (*failingStore) Query(context.Context, string, ports.Query) ([]ports.Document, error) {
	return nil, errors.New("store unavailable")
}

func TestVoteRepository_StoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	repo := NewVoteRepository(&failingStore{})

	err := repo.SaveVote(ctx, newVote("a@example.com", domain.ChoiceYes))
	assert.ErrorContains(t, err, "failed to save vote: store unavailable")

	_, err = repo.HasVoted(ctx, "a@example.com")
	assert.ErrorContains(t, err, "failed to check existing vote")

	_, err = repo.ListChoices(ctx)
	assert.ErrorContains(t, err, "failed to list choices")
}
