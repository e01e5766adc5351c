package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTopicFor(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"skincare keyword", "best skincare for winter", "skincare"},
		{"makeup keyword", "long lasting MAKEUP tips", "makeup"},
		{"beauty keyword", "beauty advice", "beauty"},
		{"cosmetics wins over later keywords", "cosmetics and makeup", "cosmetics"},
		{"no keyword defaults", "dry skin routine", "cosmetics"},
		{"empty query defaults", "", "cosmetics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topicFor(tt.query); got != tt.want {
				t.Errorf("topicFor(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestWikipedia_Search(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		serverResp  func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantResults int
		wantErr     bool
		check       func(t *testing.T, results []Result)
	}{
		{
			name:  "summary for matched topic",
			query: "gentle skincare for winter",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/page/summary/skincare" {
					t.Errorf("path = %q, want /page/summary/skincare", r.URL.Path)
				}
				_, _ = w.Write([]byte(`{
					"title": "Skin care",
					"extract": "Skin care is a range of practices that support skin integrity.",
					"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Skin_care"}}
				}`))
			},
			wantResults: 1,
			check: func(t *testing.T, results []Result) {
				if results[0].Source != "Wikipedia" {
					t.Errorf("Source = %q, want Wikipedia", results[0].Source)
				}
				if results[0].URL != "https://en.wikipedia.org/wiki/Skin_care" {
					t.Errorf("URL = %q", results[0].URL)
				}
			},
		},
		{
			name:  "unmatched query fetches the default topic",
			query: "what should I buy",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/page/summary/cosmetics" {
					t.Errorf("path = %q, want /page/summary/cosmetics", r.URL.Path)
				}
				_, _ = w.Write([]byte(`{"title": "Cosmetics", "extract": "Cosmetics are substances applied to the body."}`))
			},
			wantResults: 1,
		},
		{
			name:  "missing extract yields no results",
			query: "makeup",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"title": "Makeup"}`))
			},
			wantResults: 0,
		},
		{
			name:  "non-200 status is an error",
			query: "makeup",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResp(t, w, r)
			}))
			defer server.Close()

			backend := NewWikipedia(server.URL)
			results, err := backend.Search(context.Background(), tt.query)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Search() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() unexpected error: %v", err)
			}
			if len(results) != tt.wantResults {
				t.Fatalf("Search() returned %d results, want %d", len(results), tt.wantResults)
			}
			if tt.check != nil {
				tt.check(t, results)
			}
		})
	}
}
