package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"routine-advisor/internal/contextutil"
)

// RenderHandler converts assistant markdown replies into HTML fragments
// for the chat window, so the browser does not need its own markdown
// formatter.
type RenderHandler struct {
	markdown goldmark.Markdown
}

// NewRenderHandler creates a new RenderHandler.
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// RenderRequest represents the markdown render request payload.
type RenderRequest struct {
	Markdown string `json:"markdown"`
}

// RenderResponse represents the rendered HTML fragment.
type RenderResponse struct {
	HTML string `json:"html"`
}

// ServeHTTP renders the posted markdown to an HTML fragment.
func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(req.Markdown), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RenderResponse{HTML: buf.String()}); err != nil {
		logger.ErrorContext(ctx, "failed to encode render response", "error", err)
	}
}
