package http_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/bibbys86/mark-app-eks/internal/cart"
	"github.com/bibbys86/mark-app-eks/internal/catalog"
	"github.com/bibbys86/mark-app-eks/internal/order"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type CartRepositoryMock struct {
	CreateFunc       func(ctx context.Context, sessionID string) (*cart.Cart, error)
	GetBySessionFunc func(ctx context.Context, sessionID string) (*cart.Cart, error)
	UpsertItemFunc   func(ctx context.Context, sessionID, productID string, quantity int) (*cart.Cart, error)
	RemoveItemFunc   func(ctx context.Context, sessionID, productID string) error
}

func (m *CartRepositoryMock) Create(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return m.CreateFunc(ctx, sessionID)
}

func (m *CartRepositoryMock) GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return m.GetBySessionFunc(ctx, sessionID)
}

func (m *CartRepositoryMock) UpsertItem(ctx context.Context, sessionID, productID string, quantity int) (*cart.Cart, error) {
	return m.UpsertItemFunc(ctx, sessionID, productID, quantity)
}

func (m *CartRepositoryMock) RemoveItem(ctx context.Context, sessionID, productID string) error {
	return m.RemoveItemFunc(ctx, sessionID, productID)
}

type CatalogRepositoryMock struct {
	ListFunc func(ctx context.Context) ([]catalog.Product, error)
}

func (m *CatalogRepositoryMock) List(ctx context.Context) ([]catalog.Product, error) {
	return m.ListFunc(ctx)
}

func (m *CatalogRepositoryMock) Count(ctx context.Context) (int, error) { return 0, nil }

func (m *CatalogRepositoryMock) Insert(ctx context.Context, products []catalog.Product) error {
	return nil
}

func (m *CatalogRepositoryMock) UpdatePrice(ctx context.Context, productID string, price float64) error {
	return nil
}

type OrderRepositoryMock struct {
	GetByIDFunc func(ctx context.Context, orderID string) (*order.Order, error)
}

func (m *OrderRepositoryMock) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	return m.GetByIDFunc(ctx, orderID)
}

type CheckoutServiceMock struct {
	CheckoutFunc func(ctx context.Context, sessionID, shippingAddress, paymentMethod string) (*order.Order, error)
}

func (m *CheckoutServiceMock) Checkout(ctx context.Context, sessionID, shippingAddress, paymentMethod string) (*order.Order, error) {
	return m.CheckoutFunc(ctx, sessionID, shippingAddress, paymentMethod)
}

type PublisherMock struct {
	PublishOrderCreatedFunc func(ctx context.Context, o *order.Order) error
	published               []*order.Order
}

func (m *PublisherMock) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	m.published = append(m.published, o)
	if m.PublishOrderCreatedFunc != nil {
		return m.PublishOrderCreatedFunc(ctx, o)
	}
	return nil
}
