package ports

import (
	"context"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
}

type RegisterUserInput struct {
	Email  string
	Pseudo string
}

type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
}
