package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
// All read methods resolve the Category reference via a join.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	// GetByID returns (nil, nil) when no product has the given id.
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	// Create persists the product and fills in its assigned ID.
	Create(ctx context.Context, product *domain.Product) error
	// CountByCategory returns how many products reference the given category.
	CountByCategory(ctx context.Context, categoryID int) (int, error)
}
