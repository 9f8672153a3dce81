package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// productColumns selects the product row plus the joined category under
// dotted aliases so sqlx scans it into the nested Category struct.
var productColumns = []string{
	"p.id",
	"p.title",
	"p.description",
	"p.price",
	"p.category_id",
	`c.id AS "category.id"`,
	`c.title AS "category.title"`,
}

// ProductRepository persists products in the product table. Every read joins
// the referenced category.
type ProductRepository struct {
	db *sqlx.DB
	sq squirrel.StatementBuilderType
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := r.sq.
		Select(productColumns...).
		From("product p").
		Join("category c ON c.id = p.category_id").
		OrderBy("p.id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	products := []domain.Product{}
	if err := r.db.SelectContext(ctx, &products, qsql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	query := r.sq.
		Select(productColumns...).
		From("product p").
		Join("category c ON c.id = p.category_id").
		Where(squirrel.Eq{"p.id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var product domain.Product
	if err := r.db.GetContext(ctx, &product, qsql, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	query := r.sq.
		Select(productColumns...).
		From("product p").
		Join("category c ON c.id = p.category_id").
		Where(squirrel.Eq{"p.category_id": categoryID}).
		OrderBy("p.id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	products := []domain.Product{}
	if err := r.db.SelectContext(ctx, &products, qsql, args...); err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := r.sq.
		Insert("product").
		Columns("title", "description", "price", "category_id").
		Values(product.Title, product.Description, product.Price, product.CategoryID).
		Suffix("RETURNING id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, qsql, args...).Scan(&product.ID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	query := r.sq.
		Select("COUNT(*)").
		From("product").
		Where(squirrel.Eq{"category_id": categoryID})

	qsql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, qsql, args...); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
