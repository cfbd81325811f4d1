package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"nashra/internal/domain/entity"
	"nashra/internal/repository"
)

// DefaultBcryptCost matches the cost the rest of the stack has always
// hashed with. Raising it only affects newly created users.
const DefaultBcryptCost = 10

// Service provides account management use cases. Password hashing lives
// here, above the repositories, so both storage backends persist the same
// bcrypt hashes.
type Service struct {
	Repo repository.UserRepository

	// BcryptCost overrides DefaultBcryptCost when positive. Tests lower
	// it to keep hashing fast.
	BcryptCost int
}

func (s *Service) cost() int {
	if s.BcryptCost > 0 {
		return s.BcryptCost
	}
	return DefaultBcryptCost
}

// CreateUser validates the input, hashes the password and persists the
// account. Returns ErrDuplicateUsername when the username is taken.
// The plaintext password is never stored.
func (s *Service) CreateUser(ctx context.Context, in entity.NewUserInput) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies the username/password pair and returns the account
// on success. Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get retrieves a single user by id. Returns ErrUserNotFound if absent.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
