package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

type stubProductRepo struct {
	products  map[int]*domain.Product
	nextID    int
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) ListByCategory(_ context.Context, categoryID int) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	product.ID = r.nextID
	r.nextID++
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *stubProductRepo) CountByCategory(_ context.Context, categoryID int) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func TestProductService_CreateAndReadBack(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, testLogger())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Title:      "The Go Programming Language",
		Price:      39.99,
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil || got.Price != 39.99 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestProductService_Get_Absent(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), testLogger())

	got, err := svc.Get(context.Background(), 5)
	if err != nil || got != nil {
		t.Fatalf("expected nil for absent id, got %+v (err %v)", got, err)
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	repo := newStubProductRepo()
	repo.createErr = domain.ErrCategoryNotFound
	svc := NewProductService(repo, testLogger())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{Title: "Orphan", Price: 1, CategoryID: 9})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_Create_StorageFailure(t *testing.T) {
	repo := newStubProductRepo()
	repo.createErr = errors.New("connection reset")
	svc := NewProductService(repo, testLogger())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{Title: "Doomed", Price: 1, CategoryID: 1})

	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Message != "could not create the product" {
		t.Fatalf("unexpected message: %s", se.Message)
	}
}

func TestProductService_ListByCategory(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, testLogger())

	_, _ = svc.Create(context.Background(), ports.CreateProductInput{Title: "A", Price: 1, CategoryID: 1})
	_, _ = svc.Create(context.Background(), ports.CreateProductInput{Title: "B", Price: 2, CategoryID: 2})

	products, err := svc.ListByCategory(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByCategory returned error: %v", err)
	}
	if len(products) != 1 || products[0].Title != "A" {
		t.Fatalf("unexpected products: %+v", products)
	}
}
