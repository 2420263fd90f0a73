package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type UserService struct {
	repo    ports.UserRepository
	metrics ports.Metrics
	now     func() time.Time
}

func NewUserService(repo ports.UserRepository, metrics ports.Metrics) ports.UserService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UserService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// Register stores a new user. The pseudo falls back to the email and no
// uniqueness check is made on the email.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	pseudo := input.Pseudo
	if pseudo == "" {
		pseudo = input.Email
	}
	if pseudo == "" || input.Email == "" {
		return nil, domain.ErrMissingUserFields
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Pseudo:    pseudo,
		CreatedAt: domain.FormatTimestamp(s.now()),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to create user: %w", err))
	}
	s.metrics.UserRegistered()

	return user, nil
}
