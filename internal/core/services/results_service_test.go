package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

func TestResultsService_Results(t *testing.T) {
	repo := new(mockVoteRepository)
	svc := NewResultsService(repo)

	repo.On("ListChoices", mock.Anything).Return([]domain.Vote{
		{Choice: "Oui"}, {Choice: "Non"}, {Choice: "Oui"}, {Choice: "Peut-être"},
	}, nil).Once()

	results, err := svc.Results(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Results{domain.ChoiceYes: 2, domain.ChoiceNo: 1}, results)
}

func TestResultsService_Results_StoreFailure(t *testing.T) {
	repo := new(mockVoteRepository)
	svc := NewResultsService(repo)

	repo.On("ListChoices", mock.Anything).Return(nil, errors.New("unreachable")).Once()

	results, err := svc.Results(context.Background())
	assert.Nil(t, results)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
