package ports

import (
	"context"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type ResultsService interface {
	Results(ctx context.Context) (domain.Results, error)
}
