package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bibbys86/mark-app-eks/internal/checkout"
	"github.com/bibbys86/mark-app-eks/internal/logging"
	"github.com/bibbys86/mark-app-eks/internal/order"
)

// CheckoutService is what the handler needs from the checkout workflow.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID, shippingAddress, paymentMethod string) (*order.Order, error)
}

// OrderEventsPublisher emits the order to the message bus after checkout.
type OrderEventsPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
}

type CheckoutHandler struct {
	svc       CheckoutService
	publisher OrderEventsPublisher
	logger    *slog.Logger
}

func NewCheckoutHandler(svc CheckoutService, publisher OrderEventsPublisher, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, publisher: publisher, logger: logger}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID       string `json:"sessionId"`
		ShippingAddress string `json:"shippingAddress"`
		PaymentMethod   string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.SessionID == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.svc.Checkout(ctx, body.SessionID, body.ShippingAddress, body.PaymentMethod)
	if errors.Is(err, checkout.ErrEmptyCart) {
		writeError(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("create order",
			"sessionId", body.SessionID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	logging.WithTrace(ctx, h.logger).Info("order created",
		"orderId", o.ID,
		"totalAmount", o.TotalAmount,
		"itemCount", len(o.Items),
	)

	// The order is committed at this point; a publish failure is an
	// operational problem, not the client's.
	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
			logging.WithTrace(ctx, h.logger).Warn("publish OrderCreated",
				"orderId", o.ID, "err", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"orderId":     o.ID,
		"totalAmount": o.TotalAmount,
		"status":      o.Status,
	})
}
