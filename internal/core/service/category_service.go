package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

// ListCache abstracts the category list cache (Redis). The service works the
// same without one; cache failures degrade to a storage read.
type ListCache interface {
	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context) ([]domain.Category, error)
	Set(ctx context.Context, categories []domain.Category) error
	Invalidate(ctx context.Context) error
}

// CategoryService implements category CRUD over the persistence gateway.
type CategoryService struct {
	repo     ports.CategoryRepository
	products ports.ProductRepository
	cache    ListCache // nil when caching is disabled
	log      zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, products ports.ProductRepository, cache ListCache, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, products: products, cache: cache, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("category cache read failed, falling back to storage")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate category cache")
		}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{Title: input.Title}

	if err := s.repo.Create(ctx, category); err != nil {
		s.log.Error().Err(err).Msg("failed to create category")
		return nil, domain.NewStorageError("could not create the category", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Int("category_id", category.ID).Str("title", category.Title).Msg("category created")
	return category, nil
}

// Update replaces the full record. The path id must match the payload id; a
// mismatch is reported as not found.
func (s *CategoryService) Update(ctx context.Context, id int, input ports.UpdateCategoryInput) (*domain.Category, error) {
	if input.ID != id {
		return nil, domain.ErrCategoryNotFound
	}

	category := &domain.Category{ID: input.ID, Title: input.Title}

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		s.log.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, domain.NewStorageError("could not update the category", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Int("category_id", category.ID).Msg("category updated")
	return category, nil
}

// Delete looks the record up first and refuses to remove a category that
// products still reference.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrCategoryNotFound
	}

	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int("category_id", id).Msg("failed to count referencing products")
		return domain.NewStorageError("could not remove the category", err)
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, domain.ErrCategoryInUse) {
			return err
		}
		s.log.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return domain.NewStorageError("could not remove the category", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Int("category_id", id).Msg("category removed")
	return nil
}

func (s *CategoryService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate category cache")
	}
}
