package search

import (
	"context"
	"strings"
)

// Result represents a single item returned by a search backend.
// Results are transient: they exist only within one enrichment call.
type Result struct {
	Source  string
	Title   string
	Snippet string
	URL     string
}

// Backend performs a read-only query against one external search or
// summary API. Implementations must be safe for concurrent use.
type Backend interface {
	// Name returns the human-readable source label for this backend.
	Name() string
	// Search queries the backend. An error means this backend contributes
	// nothing; callers degrade gracefully and never propagate it.
	Search(ctx context.Context, query string) ([]Result, error)
}

// topicBias is appended to every query so results stay on beauty topics.
const topicBias = "beauty skincare routine products"

// snippetBudget caps result bodies before they are handed to the model.
const snippetBudget = 200

// BiasQuery builds the domain-biased query string used identically for
// every backend invocation.
func BiasQuery(query string) string {
	return strings.TrimSpace(strings.TrimSpace(query) + " " + topicBias)
}

// truncate caps s at snippetBudget characters, appending an ellipsis
// marker when anything was cut.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetBudget {
		return s
	}
	return string(runes[:snippetBudget]) + "..."
}
