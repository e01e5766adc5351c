package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routine-advisor/internal/handlers"
)

func TestRenderHandler(t *testing.T) {
	handler := handlers.NewRenderHandler()

	tests := []struct {
		name     string
		markdown string
		wantHTML []string
	}{
		{
			name:     "heading and emphasis",
			markdown: "# Morning Routine\n\nStart with a **gentle** cleanser.",
			wantHTML: []string{"<h1>Morning Routine</h1>", "<strong>gentle</strong>"},
		},
		{
			name:     "list",
			markdown: "- cleanser\n- moisturizer",
			wantHTML: []string{"<ul>", "<li>cleanser</li>", "<li>moisturizer</li>"},
		},
		{
			name:     "bare link is linkified",
			markdown: "See https://example.com for details.",
			wantHTML: []string{`<a href="https://example.com"`},
		},
		{
			name:     "empty input",
			markdown: "",
			wantHTML: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(handlers.RenderRequest{Markdown: tt.markdown})
			req := httptest.NewRequest(http.MethodPost, "/api/render", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var resp handlers.RenderResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			for _, fragment := range tt.wantHTML {
				if !strings.Contains(resp.HTML, fragment) {
					t.Errorf("html = %q, want it to contain %q", resp.HTML, fragment)
				}
			}
		})
	}
}

func TestRenderHandler_MethodNotAllowed(t *testing.T) {
	handler := handlers.NewRenderHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRenderHandler_InvalidBody(t *testing.T) {
	handler := handlers.NewRenderHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
