package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"routine-advisor/internal/contextutil"
	"routine-advisor/internal/llm"
	"routine-advisor/internal/service"
)

// ChatHandler handles HTTP requests for the chat proxy. The same handler
// serves both proxy flavors: wire it with an enriching ChatService for the
// web-search endpoint, or a passthrough ChatService for the plain relay.
type ChatHandler struct {
	chatService service.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      slog.Default(),
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Messages    []llm.Message `json:"messages"`
	WebSearch   bool          `json:"web_search"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ServeHTTP handles HTTP requests for chat. The response body on success
// is the provider's payload relayed verbatim.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	svcReq := service.ChatRequest{
		Messages:     req.Messages,
		UseWebSearch: req.WebSearch,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	}

	raw, err := h.chatService.ProcessChat(ctx, svcReq)
	if err != nil {
		if status, ok := service.UpstreamStatus(err); ok {
			logger.ErrorContext(ctx, "provider request failed", "status", status)
		} else {
			logger.ErrorContext(ctx, "chat request failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(raw); err != nil {
		logger.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, statusCode int, errMsg, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errMsg,
		Message: detail,
	})
}
