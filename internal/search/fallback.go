package search

import (
	"context"
	"strings"
	"time"

	"routine-advisor/internal/contextutil"
)

// FallbackSearcher runs a keyed primary backend and, when the primary
// errors or returns a non-success status, retries that single call against
// a keyless fallback backend. Like Aggregator, it never fails its caller.
type FallbackSearcher struct {
	primary  Backend
	fallback Backend
	timeout  time.Duration
}

// NewFallbackSearcher creates a FallbackSearcher. timeout bounds each
// backend call individually.
func NewFallbackSearcher(primary, fallback Backend, timeout time.Duration) *FallbackSearcher {
	return &FallbackSearcher{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
	}
}

// Gather queries the primary backend, degrading to the fallback and then
// to the fixed fallback sentences. Results are formatted as numbered
// citation blocks whose order matches SourceURLs.
func (s *FallbackSearcher) Gather(ctx context.Context, query string) (out Context) {
	logger := contextutil.LoggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "search aggregation panicked", "panic", r)
			out = Context{Status: StatusDegraded, Text: FallbackUnavailable}
		}
	}()

	results, err := s.search(ctx, s.primary, query)
	if err != nil {
		logger.WarnContext(ctx, "primary search backend failed, using fallback",
			"backend", s.primary.Name(), "error", err)
		results, err = s.search(ctx, s.fallback, query)
	}
	if err != nil {
		logger.WarnContext(ctx, "fallback search backend failed",
			"backend", s.fallback.Name(), "error", err)
		return Context{Status: StatusDegraded, Text: FallbackUnavailable}
	}

	if len(results) == 0 {
		logger.InfoContext(ctx, "no search backend contributed results", "query", query)
		return Context{Status: StatusEmpty, Text: FallbackNoResults}
	}

	blocks := make([]string, 0, len(results))
	urls := make([]string, 0, len(results))
	for i, r := range results {
		blocks = append(blocks, formatCitationBlock(i+1, r))
		urls = append(urls, r.URL)
	}

	return Context{
		Status:     StatusOK,
		Text:       strings.Join(blocks, "\n\n"),
		SourceURLs: urls,
	}
}

func (s *FallbackSearcher) search(ctx context.Context, backend Backend, query string) ([]Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return backend.Search(callCtx, query)
}
