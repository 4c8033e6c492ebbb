package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bibbys86/mark-app-eks/internal/order"
)

// ErrEmptyCart is returned when checkout runs against a session with no
// cart or no cart items. Handlers surface it as a client error.
var ErrEmptyCart = errors.New("cart is empty")

// Service converts a cart's current contents into a persisted order
// snapshot and empties the cart, all inside one transaction.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Checkout loads the cart for sessionID, prices it against the current
// catalog, writes the order with its item snapshot, and clears the
// cart items. The cart row is locked FOR UPDATE, so two checkouts on
// the same session serialize: the second one sees an emptied cart and
// fails with ErrEmptyCart instead of duplicating the order.
func (s *Service) Checkout(ctx context.Context, sessionID, shippingAddress, paymentMethod string) (*order.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var cartID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE session_id = $1 FOR UPDATE`,
		sessionID,
	).Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A session that never had a cart checks out the same way an
			// emptied one does.
			return nil, ErrEmptyCart
		}
		return nil, fmt.Errorf("lock cart: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT ci.product_id, p.name, p.image, ci.quantity, p.price
         FROM cart_items ci
         JOIN products p ON p.id = ci.product_id
         WHERE ci.cart_id = $1
         ORDER BY ci.created_at`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("select cart_items: %w", err)
	}

	var items []order.Item
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Image, &it.Quantity, &it.Price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan cart_item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows: %w", err)
	}
	rows.Close()

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// The price read above is the snapshot price: it is both summed into
	// the total and copied onto each order item.
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	o := &order.Order{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          order.StatusPending,
		PaymentStatus:   order.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, session_id, total_amount, shipping_address, payment_method, status, payment_status, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.SessionID, o.TotalAmount, o.ShippingAddress, o.PaymentMethod, o.Status, o.PaymentStatus, o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, price)
             VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), o.ID, it.ProductID, it.Quantity, it.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("insert order_item: %w", err)
		}
	}

	// The cart row itself stays, keyed by the same session, so the
	// session can shop again right away.
	if _, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return o, nil
}
