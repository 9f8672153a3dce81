package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

// ProductService implements product reads and creation. Category references
// are not verified here; referential integrity is left to the storage backend.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Int("category_id", input.CategoryID).Msg("failed to create product")
		return nil, domain.NewStorageError("could not create the product", err)
	}

	s.log.Info().Int("product_id", product.ID).Str("title", product.Title).Msg("product created")
	return product, nil
}
