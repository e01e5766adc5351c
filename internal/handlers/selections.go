package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"routine-advisor/internal/catalog"
	"routine-advisor/internal/contextutil"
	"routine-advisor/internal/storage"
)

// SelectionsHandler persists a client's selected product IDs. The client
// identifier is chosen by the browser (a UUID kept in its local storage),
// so selections survive page reloads without any account system.
type SelectionsHandler struct {
	store   storage.SelectionStore
	catalog *catalog.Catalog
}

// NewSelectionsHandler creates a new SelectionsHandler.
func NewSelectionsHandler(store storage.SelectionStore, c *catalog.Catalog) *SelectionsHandler {
	return &SelectionsHandler{
		store:   store,
		catalog: c,
	}
}

// SelectionsPayload is the request and response body for selections.
type SelectionsPayload struct {
	ProductIDs []int `json:"product_ids"`
}

// Get returns the stored selections for a client. IDs that no longer
// exist in the catalog are dropped from the response.
func (h *SelectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "Client ID is required", "")
		return
	}

	ids, err := h.store.Get(ctx, clientID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load selections", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	known := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := h.catalog.ByID(id); ok {
			known = append(known, id)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SelectionsPayload{ProductIDs: known}); err != nil {
		logger.ErrorContext(ctx, "failed to encode selections response", "error", err)
	}
}

// Put replaces the stored selections for a client.
func (h *SelectionsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "Client ID is required", "")
		return
	}

	var payload SelectionsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.store.Put(ctx, clientID, payload.ProductIDs); err != nil {
		logger.ErrorContext(ctx, "failed to save selections", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete clears the stored selections for a client.
func (h *SelectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "Client ID is required", "")
		return
	}

	if err := h.store.Clear(ctx, clientID); err != nil {
		logger.ErrorContext(ctx, "failed to clear selections", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
