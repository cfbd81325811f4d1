package repository

import (
	"context"

	"nashra/internal/domain/entity"
)

type UserRepository interface {
	// Get returns the user with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername returns the user with the given username,
	// or (nil, nil) if absent.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create persists a new user. The store assigns the id. Returns
	// entity.ErrConflict when the username is already taken.
	Create(ctx context.Context, user *entity.User) error
}
