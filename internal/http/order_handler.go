package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bibbys86/mark-app-eks/internal/logging"
	"github.com/bibbys86/mark-app-eks/internal/order"
)

type OrderHandler struct {
	repo   order.Repository
	logger *slog.Logger
}

func NewOrderHandler(repo order.Repository, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, logger: logger}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.GetByID(ctx, orderID)
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("retrieve order", "orderId", orderID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}
	if o == nil {
		logging.WithTrace(ctx, h.logger).Warn("order not found", "orderId", orderID)
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	logging.WithTrace(ctx, h.logger).Info("order retrieved",
		"orderId", o.ID, "itemCount", len(o.Items))
	writeJSON(w, http.StatusOK, o)
}
