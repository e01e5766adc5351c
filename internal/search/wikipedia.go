package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultWikipediaURL is the public REST summary API endpoint.
const DefaultWikipediaURL = "https://en.wikipedia.org/api/rest_v1"

// wikipediaTopics are the canonical pages this backend knows how to fetch,
// in match-priority order. The summary API serves fixed topic pages, not
// free-text search, so the query only selects which page to load.
var wikipediaTopics = []string{"cosmetics", "skincare", "beauty", "makeup"}

// defaultWikipediaTopic is used when no topic keyword matches the query.
const defaultWikipediaTopic = "cosmetics"

// Wikipedia fetches topic summaries from the keyless Wikipedia REST API.
type Wikipedia struct {
	BaseURL string
	client  *http.Client
}

// NewWikipedia creates a Wikipedia backend. An empty baseURL selects the
// public API endpoint.
func NewWikipedia(baseURL string) *Wikipedia {
	if baseURL == "" {
		baseURL = DefaultWikipediaURL
	}
	return &Wikipedia{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Name returns the source label for this backend.
func (w *Wikipedia) Name() string {
	return "Wikipedia"
}

// topicFor picks the first known topic keyword found in the query.
func topicFor(query string) string {
	lowered := strings.ToLower(query)
	for _, topic := range wikipediaTopics {
		if strings.Contains(lowered, topic) {
			return topic
		}
	}
	return defaultWikipediaTopic
}

// pageSummary is the subset of the REST summary payload we consume.
type pageSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Search fetches the summary of the topic page selected by the query.
func (w *Wikipedia) Search(ctx context.Context, query string) ([]Result, error) {
	topic := topicFor(query)
	endpoint := fmt.Sprintf("%s/page/summary/%s", w.BaseURL, url.PathEscape(topic))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status %d", resp.StatusCode)
	}

	var summary pageSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if summary.Extract == "" {
		return nil, nil
	}

	return []Result{{
		Source:  w.Name(),
		Title:   summary.Title,
		Snippet: summary.Extract,
		URL:     summary.ContentURLs.Desktop.Page,
	}}, nil
}
