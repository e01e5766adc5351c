package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultTavilyURL is the Tavily search API endpoint.
const DefaultTavilyURL = "https://api.tavily.com"

// tavilyIncludeDomains is the allow-list of sites the paid search is
// restricted to.
var tavilyIncludeDomains = []string{
	"loreal.com",
	"sephora.com",
	"ulta.com",
	"allure.com",
	"byrdie.com",
}

// tavilyMaxResults caps how many results one search may return.
const tavilyMaxResults = 5

// Tavily queries the keyed Tavily search API.
type Tavily struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewTavily creates a Tavily backend. An empty baseURL selects the public
// API endpoint.
func NewTavily(baseURL, apiKey string) *Tavily {
	if baseURL == "" {
		baseURL = DefaultTavilyURL
	}
	return &Tavily{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

// Name returns the source label for this backend.
func (t *Tavily) Name() string {
	return "Tavily"
}

// tavilyRequest is the wire format for the Tavily search endpoint.
type tavilyRequest struct {
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeAnswer  bool     `json:"include_answer"`
	IncludeDomains []string `json:"include_domains"`
	MaxResults     int      `json:"max_results"`
}

// tavilyResponse is the subset of the Tavily payload we consume.
type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		URL     string `json:"url"`
	} `json:"results"`
}

// Search runs one basic-depth search restricted to the domain allow-list.
func (t *Tavily) Search(ctx context.Context, query string) ([]Result, error) {
	payload := tavilyRequest{
		Query:          query,
		SearchDepth:    "basic",
		IncludeAnswer:  true,
		IncludeDomains: tavilyIncludeDomains,
		MaxResults:     tavilyMaxResults,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.BaseURL+"/search", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status %d", resp.StatusCode)
	}

	var decoded tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, Result{
			Source:  t.Name(),
			Title:   r.Title,
			Snippet: r.Content,
			URL:     r.URL,
		})
	}

	return results, nil
}
