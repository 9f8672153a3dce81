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

// CategoryRepository persists categories in the category table.
type CategoryRepository struct {
	db *sqlx.DB
	sq squirrel.StatementBuilderType
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := r.sq.
		Select("id", "title").
		From("category").
		OrderBy("id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, qsql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	query := r.sq.
		Select("id", "title").
		From("category").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var category domain.Category
	if err := r.db.GetContext(ctx, &category, qsql, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := r.sq.
		Insert("category").
		Columns("title").
		Values(category.Title).
		Suffix("RETURNING id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, qsql, args...).Scan(&category.ID); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := r.sq.
		Update("category").
		Set("title", category.Title).
		Where(squirrel.Eq{"id": category.ID})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		if isConflict(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	query := r.sq.
		Delete("category").
		Where(squirrel.Eq{"id": id})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
