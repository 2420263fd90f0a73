package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockVoteRepository) ListVotes(ctx context.Context) ([]domain.VoteSummary, error) {
	args := m.Called(ctx)
	votes, _ := args.Get(0).([]domain.VoteSummary)
	return votes, args.Error(1)
}

func (m *mockVoteRepository) ListChoices(ctx context.Context) ([]domain.Vote, error) {
	args := m.Called(ctx)
	votes, _ := args.Get(0).([]domain.Vote)
	return votes, args.Error(1)
}

func (m *mockVoteRepository) HasVoted(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishVote(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

type recordingMetrics struct {
	users     int
	votes     map[domain.Choice]int
	rejected  map[string]int
	pubErrors int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		votes:    map[domain.Choice]int{},
		rejected: map[string]int{},
	}
}

func (m *recordingMetrics) UserRegistered()              { m.users++ }
func (m *recordingMetrics) VoteRecorded(c domain.Choice) { m.votes[c]++ }
func (m *recordingMetrics) VoteRejected(reason string)   { m.rejected[reason]++ }
func (m *recordingMetrics) PublishFailed()               { m.pubErrors++ }
