package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation requires an existing cart.
var ErrNotFound = errors.New("cart not found")

type Repository interface {
	// Create allocates a cart for sessionID, or returns the existing one.
	Create(ctx context.Context, sessionID string) (*Cart, error)
	// GetBySession loads the cart with resolved items; nil when absent.
	GetBySession(ctx context.Context, sessionID string) (*Cart, error)
	// UpsertItem sets the quantity for (cart, product), creating the cart
	// lazily. An existing line is overwritten, not incremented.
	UpsertItem(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error)
	// RemoveItem deletes the line if present; a missing line is a no-op,
	// a missing cart is ErrNotFound.
	RemoveItem(ctx context.Context, sessionID, productID string) error
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

const ensureCartSQL = `
INSERT INTO carts (id, session_id)
VALUES ($1, $2)
ON CONFLICT (session_id) DO UPDATE SET updated_at = NOW()
RETURNING id
`

func (r *repo) Create(ctx context.Context, sessionID string) (*Cart, error) {
	var id string
	err := r.db.QueryRowContext(ctx, ensureCartSQL, uuid.NewString(), sessionID).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return &Cart{ID: id, SessionID: sessionID, Items: []Item{}}, nil
}

func (r *repo) GetBySession(ctx context.Context, sessionID string) (*Cart, error) {
	var c Cart
	err := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, updated_at FROM carts WHERE session_id = $1`,
		sessionID,
	).Scan(&c.ID, &c.SessionID, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// caller (handler) turns this into 404
			return nil, nil
		}
		return nil, fmt.Errorf("select cart: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT ci.product_id, p.name, p.description, p.price, p.image, ci.quantity
         FROM cart_items ci
         JOIN products p ON p.id = ci.product_id
         WHERE ci.cart_id = $1
         ORDER BY ci.created_at`,
		c.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("select cart_items: %w", err)
	}
	defer rows.Close()

	c.Items = []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Description, &it.Price, &it.Image, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart_item: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &c, nil
}

func (r *repo) UpsertItem(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var cartID string
	if err := tx.QueryRowContext(ctx, ensureCartSQL, uuid.NewString(), sessionID).Scan(&cartID); err != nil {
		return nil, fmt.Errorf("ensure cart: %w", err)
	}

	// Quantity and product existence are deliberately not validated here;
	// the API passes client values through as-is.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO cart_items (id, cart_id, product_id, quantity)
         VALUES ($1, $2, $3, $4)
         ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		uuid.NewString(), cartID, productID, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert cart_item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetBySession(ctx, sessionID)
}

func (r *repo) RemoveItem(ctx context.Context, sessionID, productID string) error {
	var cartID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE session_id = $1`, sessionID,
	).Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("select cart: %w", err)
	}

	// Deleting an absent line is fine; the cart simply stays as it was.
	_, err = r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete cart_item: %w", err)
	}
	return nil
}
