package memory

import (
	"context"
	"testing"

	"nashra/internal/domain/entity"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	u := &entity.User{Username: "admin", PasswordHash: "$2a$10$hash"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == "" {
		t.Fatal("Create() did not assign an id")
	}

	got, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Username != "admin" {
		t.Errorf("Get() = %+v, want username admin", got)
	}

	byName, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byName == nil || byName.ID != u.ID {
		t.Errorf("GetByUsername() = %+v, want id %s", byName, u.ID)
	}
}

func TestUserRepo_CreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &entity.User{Username: "admin", PasswordHash: "h1"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, &entity.User{Username: "admin", PasswordHash: "h2"})
	if err != entity.ErrConflict {
		t.Errorf("Create() error = %v, want ErrConflict", err)
	}
}

func TestUserRepo_GetAbsent(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil for absent id", got)
	}

	byName, err := repo.GetByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byName != nil {
		t.Errorf("GetByUsername() = %+v, want nil for absent username", byName)
	}
}
