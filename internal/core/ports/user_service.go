package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// UpdateUserInput carries the payload for a full-replace user update.
type UpdateUserInput struct {
	ID       int
	Username string
	Password string
	Role     string
}

// UserService defines account management and authentication use cases.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Register creates a self-service account. The role is always forced to
	// employee regardless of what the caller submitted.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Unknown username and wrong password yield the same error.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenIssuer mints signed authentication tokens from a user identity.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
