package ports

import (
	"context"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// CreateProductInput carries the payload for creating a product.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	CategoryID  int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	// Get returns (nil, nil) when the id is absent.
	Get(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
