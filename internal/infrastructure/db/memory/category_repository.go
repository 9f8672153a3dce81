package memory

import (
	"context"
	"sort"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// CategoryRepository persists categories in the shared in-memory store.
type CategoryRepository struct {
	s *Store
}

func NewCategoryRepository(s *Store) *CategoryRepository {
	return &CategoryRepository{s: s}
}

func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepository) Create(_ context.Context, category *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, category *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.s.categories, id)
	return nil
}
