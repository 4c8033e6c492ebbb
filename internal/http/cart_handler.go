package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bibbys86/mark-app-eks/internal/cart"
	"github.com/bibbys86/mark-app-eks/internal/logging"
)

type CartHandler struct {
	repo   cart.Repository
	logger *slog.Logger
}

func NewCartHandler(repo cart.Repository, logger *slog.Logger) *CartHandler {
	return &CartHandler{repo: repo, logger: logger}
}

// CreateCart allocates a cart under a fresh session id. The client
// echoes the session id on every later call.
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	sessionID := uuid.NewString()
	c, err := h.repo.Create(ctx, sessionID)
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("create cart", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create cart")
		return
	}

	logging.WithTrace(ctx, h.logger).Info("cart created", "cartId", c.ID, "sessionId", sessionID)
	writeJSON(w, http.StatusOK, map[string]string{
		"cartId":    c.ID,
		"sessionId": sessionID,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.repo.GetBySession(ctx, sessionID)
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("fetch cart", "sessionId", sessionID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Cart not found")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// UpsertItem sets the quantity for a product in the session's cart,
// creating the cart on first touch. Quantity and product id are passed
// through unvalidated, matching the storefront's contract.
func (h *CartHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId")
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.repo.UpsertItem(ctx, sessionID, body.ProductID, body.Quantity)
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("add item to cart",
			"sessionId", sessionID, "productId", body.ProductID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	productID := r.PathValue("productId")
	if sessionID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId or productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	err := h.repo.RemoveItem(ctx, sessionID, productID)
	if errors.Is(err, cart.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("remove item from cart",
			"sessionId", sessionID, "productId", productID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}

	logging.WithTrace(ctx, h.logger).Info("cart item removed",
		"sessionId", sessionID, "productId", productID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
