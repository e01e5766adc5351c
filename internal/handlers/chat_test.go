package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routine-advisor/internal/handlers"
	"routine-advisor/internal/llm"
	"routine-advisor/internal/service"
	"routine-advisor/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestChatHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := handlers.NewChatHandler(mocks.NewMockChatService(ctrl))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/chat", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
			}

			var errResp handlers.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error != "Method not allowed" {
				t.Errorf("error = %q, want %q", errResp.Error, "Method not allowed")
			}
		})
	}
}

func TestChatHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := handlers.NewChatHandler(mocks.NewMockChatService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var errResp handlers.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "Invalid request body" {
		t.Errorf("error = %q, want %q", errResp.Error, "Invalid request body")
	}
}

func TestChatHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockChatService(ctrl)
	handler := handlers.NewChatHandler(mockService)

	providerPayload := `{"id":"chatcmpl-1","choices":[{"message":{"role":"assistant","content":"Try a gentle cleanser."}}]}`

	mockService.EXPECT().
		ProcessChat(gomock.Any(), service.ChatRequest{
			Messages:     []llm.Message{{Role: llm.RoleUser, Content: "best cleanser?"}},
			UseWebSearch: true,
			MaxTokens:    800,
			Temperature:  0.4,
		}).
		Return(json.RawMessage(providerPayload), nil)

	body, _ := json.Marshal(handlers.ChatRequest{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "best cleanser?"}},
		WebSearch:   true,
		MaxTokens:   800,
		Temperature: 0.4,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if rec.Body.String() != providerPayload {
		t.Errorf("body = %q, want the provider payload relayed verbatim", rec.Body.String())
	}
}

func TestChatHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockChatService(ctrl)
	handler := handlers.NewChatHandler(mockService)

	mockService.EXPECT().
		ProcessChat(gomock.Any(), gomock.Any()).
		Return(nil, service.WrapError(&llm.UpstreamError{StatusCode: 502}, "failed to get provider response"))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[]}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var errResp handlers.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "Internal server error" {
		t.Errorf("error = %q, want %q", errResp.Error, "Internal server error")
	}
	if !strings.Contains(errResp.Message, "502") {
		t.Errorf("message = %q, want it to mention the provider status", errResp.Message)
	}
}

func TestChatHandler_PlainServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockChatService(ctrl)
	handler := handlers.NewChatHandler(mockService)

	mockService.EXPECT().
		ProcessChat(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[]}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var errResp handlers.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Message != "connection refused" {
		t.Errorf("message = %q, want the underlying error text", errResp.Message)
	}
}
