package services

import (
	"context"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type noopMetrics struct{}

func (noopMetrics) UserRegistered()            {}
func (noopMetrics) VoteRecorded(domain.Choice) {}
func (noopMetrics) VoteRejected(string)        {}
func (noopMetrics) PublishFailed()             {}

type noopPublisher struct{}

func (noopPublisher) PublishVote(context.Context, *domain.Vote) error { return nil }
func (noopPublisher) Close() error                                    { return nil }
