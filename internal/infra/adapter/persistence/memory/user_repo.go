package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"nashra/internal/domain/entity"
	"nashra/internal/repository"
)

// UserRepo stores users in memory.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.User)}
}

// Get returns the user with the given id, or (nil, nil) if absent.
func (r *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u.Clone(), nil
}

// GetByUsername returns the user with the given username, or (nil, nil)
// if absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

// Create stores a new user, assigning its id. Usernames are unique.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return entity.ErrConflict
		}
	}

	user.ID = uuid.NewString()
	r.users[user.ID] = user.Clone()
	return nil
}
