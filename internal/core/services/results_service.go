package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type resultsService struct {
	voteRepo ports.VoteRepository
}

func NewResultsService(voteRepo ports.VoteRepository) ports.ResultsService {
	return &resultsService{
		voteRepo: voteRepo,
	}
}

func (s *resultsService) Results(ctx context.Context) (domain.Results, error) {
	votes, err := s.voteRepo.ListChoices(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to fetch votes: %w", err))
	}

	return domain.Tally(votes), nil
}
