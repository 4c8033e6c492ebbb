package catalog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "image"}).
			AddRow("p1", "iPhone 15 Pro", "Latest iPhone", 999.00, "iPhone", "a.jpg").
			AddRow("p2", "iPad Pro", "Powerful iPad", 799.00, "iPad", "b.jpg"))

	repo := NewRepository(db)
	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "iPhone 15 Pro", products[0].Name)
	require.Equal(t, 999.00, products[0].Price)
}

func TestUpdatePrice_UnknownProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET price = $2 WHERE id = $1")).
		WithArgs("missing", 1.00).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.UpdatePrice(context.Background(), "missing", 1.00)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO products"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs(sqlmock.AnyArg(), "iPhone 15 Pro", "Latest iPhone", 999.00, "iPhone", "a.jpg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewRepository(db)
	err = repo.Insert(context.Background(), []Product{
		{Name: "iPhone 15 Pro", Description: "Latest iPhone", Price: 999.00, Category: "iPhone", Image: "a.jpg"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
