package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishVote(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	vote := &domain.Vote{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Pseudo:    "alice@example.com",
		Choice:    domain.ChoiceYes,
		CreatedAt: "2025-05-02T08:11:12.345678Z",
	}
	require.NoError(t, p.PublishVote(context.Background(), vote))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "alice@example.com", string(msg.Key))

	var event VoteEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, VoteEvent{
		Type:      EventVoteCreated,
		VoteID:    vote.ID.String(),
		Email:     "alice@example.com",
		Choice:    "Oui",
		CreatedAt: "2025-05-02T08:11:12.345678Z",
	}, event)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("leader not available")}}

	err := p.PublishVote(context.Background(), &domain.Vote{ID: uuid.New(), Email: "a@example.com", Choice: domain.ChoiceNo})
	assert.ErrorContains(t, err, "leader not available")
}

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "votes")
	require.NotNil(t, p)
	assert.NoError(t, p.Close())
}
