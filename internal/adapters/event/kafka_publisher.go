package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

const EventVoteCreated = "vote.created"

// VoteEvent is the message value written for every stored vote.
type VoteEvent struct {
	Type      string `json:"type"`
	VoteID    string `json:"vote_id"`
	Email     string `json:"email"`
	Choice    string `json:"choice"`
	CreatedAt string `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

/*
Messages are keyed by email and balanced with kafka.Hash so all the votes of
one voter land on the same partition, in order. RequireAll waits for every
in-sync replica before the write is acknowledged.
*/
func NewKafkaPublisher(brokers []string, topic string) ports.VotePublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  5,
		Compression:  kafka.Snappy,
	}

	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishVote(ctx context.Context, vote *domain.Vote) error {
	event := VoteEvent{
		Type:      EventVoteCreated,
		VoteID:    vote.ID.String(),
		Email:     vote.Email,
		Choice:    string(vote.Choice),
		CreatedAt: vote.CreatedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal vote event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(vote.Email),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(EventVoteCreated)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}
