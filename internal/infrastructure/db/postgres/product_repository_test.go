package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

const selectProducts = `SELECT p.id, p.title, p.description, p.price, p.category_id, c.id AS "category.id", c.title AS "category.title" FROM product p JOIN category c ON c.id = p.category_id`

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "price", "category_id", "category.id", "category.title"})
}

func TestProductRepository_GetByID_JoinsCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectProducts+" WHERE p.id = $1")).
		WithArgs(1).
		WillReturnRows(productRows().AddRow(1, "Go in Action", "", 29.99, 2, 2, "Books"))

	product, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, product.CategoryID)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Books", product.Category.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectProducts+" WHERE p.id = $1")).
		WithArgs(9).
		WillReturnRows(productRows())

	product, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := productRows().
		AddRow(1, "A", "", 1.0, 2, 2, "Books").
		AddRow(3, "B", "", 2.0, 2, 2, "Books")

	mock.ExpectQuery(regexp.QuoteMeta(selectProducts+" WHERE p.category_id = $1 ORDER BY p.id")).
		WithArgs(2).
		WillReturnRows(rows)

	products, err := repo.ListByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO product (title,description,price,category_id) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Go in Action", "second edition", 29.99, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	product := &domain.Product{Title: "Go in Action", Description: "second edition", Price: 29.99, CategoryID: 2}
	require.NoError(t, repo.Create(context.Background(), product))
	assert.Equal(t, 5, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_UnknownCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO product (title,description,price,category_id) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Orphan", "", 1.0, 42).
		WillReturnError(&pq.Error{Code: "23503"})

	product := &domain.Product{Title: "Orphan", Price: 1.0, CategoryID: 42}
	err := repo.Create(context.Background(), product)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CountByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM product WHERE category_id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
