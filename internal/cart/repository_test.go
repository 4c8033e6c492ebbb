package cart

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGetBySession_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, updated_at FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "updated_at"}))

	repo := NewRepository(db)
	c, err := repo.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestGetBySession_ResolvesItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, updated_at FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "updated_at"}).
			AddRow("cart-1", "sess-1", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items ci")).
		WithArgs("cart-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "description", "price", "image", "quantity"}).
			AddRow("p1", "iPhone 15", "Affordable iPhone", 799.00, "iphone.jpg", 2))

	repo := NewRepository(db)
	c, err := repo.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "cart-1", c.ID)
	require.Len(t, c.Items, 1)
	require.Equal(t, "iPhone 15", c.Items[0].Name)
	require.Equal(t, 799.00, c.Items[0].Price)
	require.Equal(t, 2, c.Items[0].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySession_EmptyCartHasZeroItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, updated_at FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "updated_at"}).
			AddRow("cart-1", "sess-1", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items ci")).
		WithArgs("cart-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "description", "price", "image", "quantity"}))

	repo := NewRepository(db)
	c, err := repo.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Empty(t, c.Items)
	require.NotNil(t, c.Items, "items marshal as [], not null")
}

func TestUpsertItem_OverwritesQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO carts")).
		WithArgs(sqlmock.AnyArg(), "sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cart-1"))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity")).
		WithArgs(sqlmock.AnyArg(), "cart-1", "p1", 5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// reload after commit
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, updated_at FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "updated_at"}).
			AddRow("cart-1", "sess-1", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items ci")).
		WithArgs("cart-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "description", "price", "image", "quantity"}).
			AddRow("p1", "iPhone 15", "Affordable iPhone", 799.00, "iphone.jpg", 5))

	repo := NewRepository(db)
	c, err := repo.UpsertItem(context.Background(), "sess-1", "p1", 5)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	require.Equal(t, 5, c.Items[0].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertItem_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO carts")).
		WithArgs(sqlmock.AnyArg(), "sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cart-1"))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (cart_id, product_id)")).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	repo := NewRepository(db)
	_, err = repo.UpsertItem(context.Background(), "sess-1", "missing-product", 1)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem_CartNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewRepository(db)
	err = repo.RemoveItem(context.Background(), "sess-1", "p1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItem_AbsentLineIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM carts WHERE session_id = $1")).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cart-1"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2")).
		WithArgs("cart-1", "p1").
		WillReturnResult(sqlmock.NewResult(0, 0)) // nothing deleted

	repo := NewRepository(db)
	err = repo.RemoveItem(context.Background(), "sess-1", "p1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReturnsExistingCartForSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO carts")).
		WithArgs(sqlmock.AnyArg(), "sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("existing-cart"))

	repo := NewRepository(db)
	c, err := repo.Create(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Equal(t, "existing-cart", c.ID)
	require.Equal(t, "sess-1", c.SessionID)
	require.Empty(t, c.Items)
}
