package memory

import (
	"context"
	"sort"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// ProductRepository persists products in the shared in-memory store.
// Reads attach the referenced category; like the relational backend's join,
// a dangling reference leaves Category nil. Referential integrity is not
// enforced on create; unknown category ids simply join to nothing.
type ProductRepository struct {
	s *Store
}

func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		products = append(products, r.withCategory(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	joined := r.withCategory(p)
	return &joined, nil
}

func (r *ProductRepository) ListByCategory(_ context.Context, categoryID int) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := []domain.Product{}
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			products = append(products, r.withCategory(p))
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product.ID = r.s.nextProductID
	r.s.nextProductID++
	stored := *product
	stored.Category = nil
	r.s.products[product.ID] = stored

	if c, ok := r.s.categories[product.CategoryID]; ok {
		product.Category = &c
	}
	return nil
}

func (r *ProductRepository) CountByCategory(_ context.Context, categoryID int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// withCategory returns a copy of p with its category attached. Callers must
// hold at least a read lock.
func (r *ProductRepository) withCategory(p domain.Product) domain.Product {
	if c, ok := r.s.categories[p.CategoryID]; ok {
		p.Category = &c
	}
	return p
}
