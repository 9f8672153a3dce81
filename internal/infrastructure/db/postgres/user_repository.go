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

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	db *sqlx.DB
	sq squirrel.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := r.sq.
		Select("id", "username", "password_hash", "role").
		From("users").
		OrderBy("id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, qsql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query := r.sq.
		Select("id", "username", "password_hash", "role").
		From("users").
		Where(where)

	qsql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user domain.User
	if err := r.db.GetContext(ctx, &user, qsql, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := r.sq.
		Insert("users").
		Columns("username", "password_hash", "role").
		Values(user.Username, user.PasswordHash, user.Role).
		Suffix("RETURNING id")

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, qsql, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := r.sq.
		Update("users").
		Set("username", user.Username).
		Set("password_hash", user.PasswordHash).
		Set("role", user.Role).
		Where(squirrel.Eq{"id": user.ID})

	qsql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, qsql, args...)
	if err != nil {
		if isConflict(err) {
			return domain.ErrConflict
		}
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
