package handlers

import (
	"encoding/json"
	"net/http"

	"routine-advisor/internal/catalog"
	"routine-advisor/internal/contextutil"
)

// ProductsHandler serves the product catalog with optional filtering.
type ProductsHandler struct {
	catalog *catalog.Catalog
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(c *catalog.Catalog) *ProductsHandler {
	return &ProductsHandler{catalog: c}
}

// ProductsResponse represents the catalog response payload.
type ProductsResponse struct {
	Products []catalog.Product `json:"products"`
}

// ServeHTTP lists products, filtered by the optional category and q
// query parameters.
func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	category := r.URL.Query().Get("category")
	term := r.URL.Query().Get("q")
	products := h.catalog.Filter(category, term)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ProductsResponse{Products: products}); err != nil {
		logger.ErrorContext(ctx, "failed to encode products response", "error", err)
	}
}
