package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// CreateCategoryInput carries the payload for creating a category.
type CreateCategoryInput struct {
	Title string
}

// UpdateCategoryInput carries the payload for a full-replace update.
// ID must match the path identifier or the update is rejected as not found.
type UpdateCategoryInput struct {
	ID    int
	Title string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	// Get returns (nil, nil) when the id is absent; the transport layer renders
	// that as a 200 with a null body.
	Get(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
