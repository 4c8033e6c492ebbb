package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bibbys86/mark-app-eks/internal/catalog"
	"github.com/bibbys86/mark-app-eks/internal/logging"
)

type CatalogHandler struct {
	repo   catalog.Repository
	logger *slog.Logger
}

func NewCatalogHandler(repo catalog.Repository, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, logger: logger}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.repo.List(ctx)
	if err != nil {
		logging.WithTrace(ctx, h.logger).Error("retrieve products", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	logging.WithTrace(ctx, h.logger).Info("products retrieved", "count", len(products))
	writeJSON(w, http.StatusOK, products)
}
