package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"nashra/internal/domain/entity"
	userUC "nashra/internal/usecase/user"
)

type stubRepo struct {
	data map[string]*entity.User
	err  error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.User{}}
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.User, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.data {
		if existing.Username == u.Username {
			return entity.ErrConflict
		}
	}
	u.ID = "u-" + u.Username
	s.data[u.ID] = u
	return nil
}

func testService(repo *stubRepo) *userUC.Service {
	return &userUC.Service{Repo: repo, BcryptCost: bcrypt.MinCost}
}

func TestService_CreateUser(t *testing.T) {
	repo := newStub()
	svc := testService(repo)

	u, err := svc.CreateUser(context.Background(), entity.NewUserInput{
		Username: "admin",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}

	if u.ID == "" {
		t.Error("user was not assigned an id")
	}
	if u.PasswordHash == "s3cret-pass" || !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Errorf("PasswordHash = %q, want a bcrypt hash", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify the password: %v", err)
	}
}

func TestService_CreateUser_Duplicate(t *testing.T) {
	repo := newStub()
	svc := testService(repo)
	in := entity.NewUserInput{Username: "admin", Password: "pw-one-two"}

	if _, err := svc.CreateUser(context.Background(), in); err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}
	_, err := svc.CreateUser(context.Background(), in)
	if !errors.Is(err, userUC.ErrDuplicateUsername) {
		t.Errorf("CreateUser err=%v, want ErrDuplicateUsername", err)
	}
}

func TestService_CreateUser_Invalid(t *testing.T) {
	svc := testService(newStub())

	_, err := svc.CreateUser(context.Background(), entity.NewUserInput{})
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("CreateUser err=%v, want ValidationErrors", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	repo := newStub()
	svc := testService(repo)

	created, err := svc.CreateUser(context.Background(), entity.NewUserInput{
		Username: "admin",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}

	got, err := svc.Authenticate(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate err=%v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Authenticate returned id %q, want %q", got.ID, created.ID)
	}
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStub()
	svc := testService(repo)

	if _, err := svc.CreateUser(context.Background(), entity.NewUserInput{
		Username: "admin", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}

	_, err := svc.Authenticate(context.Background(), "admin", "wrong")
	if !errors.Is(err, userUC.ErrInvalidCredentials) {
		t.Errorf("Authenticate err=%v, want ErrInvalidCredentials", err)
	}
}

func TestService_Authenticate_UnknownUser(t *testing.T) {
	svc := testService(newStub())

	_, err := svc.Authenticate(context.Background(), "nobody", "whatever")
	if !errors.Is(err, userUC.ErrInvalidCredentials) {
		t.Errorf("Authenticate err=%v, want ErrInvalidCredentials", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := testService(newStub())

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("Get err=%v, want ErrUserNotFound", err)
	}
}
