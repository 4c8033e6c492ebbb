package http

import (
	"log/slog"
	"net/http"

	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"

	"github.com/bibbys86/mark-app-eks/internal/cart"
	"github.com/bibbys86/mark-app-eks/internal/catalog"
	"github.com/bibbys86/mark-app-eks/internal/order"
)

type Deps struct {
	Logger    *slog.Logger
	Carts     cart.Repository
	Catalog   catalog.Repository
	Orders    order.Repository
	Checkout  CheckoutService
	Publisher OrderEventsPublisher
	// Static serves the SPA shell; nil disables it.
	Static http.Handler
}

// NewRouter wires every route onto a traced ServeMux, so each route
// pattern becomes an APM resource.
func NewRouter(deps Deps) http.Handler {
	mux := httptrace.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler)

	cartHandler := NewCartHandler(deps.Carts, deps.Logger)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	orderHandler := NewOrderHandler(deps.Orders, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Publisher, deps.Logger)

	mux.HandleFunc("POST /api/cart", cartHandler.CreateCart)
	mux.HandleFunc("GET /api/cart/{sessionId}", cartHandler.GetCart)
	mux.HandleFunc("POST /api/cart/{sessionId}/items", cartHandler.UpsertItem)
	mux.HandleFunc("DELETE /api/cart/{sessionId}/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("POST /api/checkout", checkoutHandler.Checkout)
	mux.HandleFunc("GET /api/orders/{orderId}", orderHandler.GetOrder)

	if deps.Static != nil {
		mux.Handle("/", deps.Static)
	}

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "mark-shop-backend",
	})
}
