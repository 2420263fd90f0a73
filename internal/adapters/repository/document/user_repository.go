package document

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/ballotbox/internal/core/domain"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type userRepository struct {
	store ports.DocumentStore
}

func NewUserRepository(store ports.DocumentStore) ports.UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	doc := ports.Document{
		"id":        user.ID.String(),
		"email":     user.Email,
		"pseudo":    user.Pseudo,
		"createdAt": user.CreatedAt,
	}
	if err := r.store.Insert(ctx, UsersCollection, user.Email, doc); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
