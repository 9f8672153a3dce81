package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create persists the user and fills in its assigned ID. Returns
	// domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) error
	// Update replaces the full record. Returns domain.ErrUserNotFound when the
	// id is absent and domain.ErrConflict on a concurrent modification.
	Update(ctx context.Context, user *domain.User) error
}
