package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

type stubUserRepo struct {
	users     map[int]*domain.User
	nextID    int
	updateErr error
	updated   *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	r.updated = &clone
	return nil
}

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewTokenService("secret", time.Hour), testLogger())
}

func TestUserService_Register_ForcesEmployeeAndHashes(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected role employee, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "bob", "pass")
	if _, err := svc.Register(context.Background(), "bob", "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := parseClaims(t, token, "secret")
	if claims["username"] != "carol" {
		t.Fatalf("expected username claim carol, got %v", claims["username"])
	}
	if claims["role"] != domain.RoleEmployee {
		t.Fatalf("expected role claim employee, got %v", claims["role"])
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "dave", "goodpass")
	token, _, err := svc.Login(context.Background(), "dave", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token on failed login")
	}
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Update_IDMismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "erin", "pass")

	input := updateInput(1, "erin", "newpass", domain.RoleManager)
	if _, err := svc.Update(context.Background(), 2, input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("storage must be unchanged on id mismatch")
	}
}

func TestUserService_Update_Absent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	input := updateInput(5, "ghost", "pass", domain.RoleEmployee)
	if _, err := svc.Update(context.Background(), 5, input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("storage must be unchanged for an absent id")
	}
}

func TestUserService_Update_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "frank", "pass")

	user, err := svc.Update(context.Background(), 1, updateInput(1, "frank", "newpass", domain.RoleManager))
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected role manager, got %s", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("expected rehashed password")
	}
}

func TestUserService_Update_Conflict(t *testing.T) {
	repo := newStubUserRepo()
	repo.updateErr = domain.ErrConflict
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "gina", "pass")

	if _, err := svc.Update(context.Background(), 1, updateInput(1, "gina", "pass", domain.RoleEmployee)); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
