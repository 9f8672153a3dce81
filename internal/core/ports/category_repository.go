package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	// GetByID returns (nil, nil) when no category has the given id.
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	// Create persists the category and fills in its assigned ID.
	Create(ctx context.Context, category *domain.Category) error
	// Update replaces the full record. Returns domain.ErrCategoryNotFound when
	// the id is absent and domain.ErrConflict on a storage-detected concurrent
	// modification.
	Update(ctx context.Context, category *domain.Category) error
	// Delete removes the record. Returns domain.ErrCategoryNotFound when the id
	// is absent and domain.ErrCategoryInUse when referential rules forbid it.
	Delete(ctx context.Context, id int) error
}
