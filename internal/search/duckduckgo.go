package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultDuckDuckGoURL is the public Instant Answer API endpoint.
const DefaultDuckDuckGoURL = "https://api.duckduckgo.com"

// maxRelatedTopics caps how many related topics contribute to the context.
const maxRelatedTopics = 2

// DuckDuckGo queries the keyless DuckDuckGo Instant Answer API.
type DuckDuckGo struct {
	BaseURL string
	client  *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo backend. An empty baseURL selects the
// public API endpoint.
func NewDuckDuckGo(baseURL string) *DuckDuckGo {
	if baseURL == "" {
		baseURL = DefaultDuckDuckGoURL
	}
	return &DuckDuckGo{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Name returns the source label for this backend.
func (d *DuckDuckGo) Name() string {
	return "DuckDuckGo"
}

// instantAnswer is the subset of the Instant Answer payload we consume.
type instantAnswer struct {
	Heading       string `json:"Heading"`
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search queries the Instant Answer API. It contributes the direct-answer
// abstract plus the first related topics that carry both text and a URL.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1", d.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status %d", resp.StatusCode)
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var results []Result
	if answer.Abstract != "" {
		title := answer.Heading
		if title == "" {
			title = "Search Result"
		}
		results = append(results, Result{
			Source:  d.Name(),
			Title:   title,
			Snippet: answer.Abstract,
			URL:     answer.AbstractURL,
		})
	}

	added := 0
	for _, topic := range answer.RelatedTopics {
		if added >= maxRelatedTopics {
			break
		}
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, Result{
			Source:  d.Name(),
			Title:   "Related topic",
			Snippet: topic.Text,
			URL:     topic.FirstURL,
		})
		added++
	}

	return results, nil
}
