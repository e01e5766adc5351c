package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"routine-advisor/internal/contextutil"
)

// Aggregator fans one query out to every configured backend concurrently
// and combines whatever succeeds. It never fails its caller: total failure
// degrades to a fixed fallback sentence instead.
type Aggregator struct {
	backends []Backend
	timeout  time.Duration
}

// NewAggregator creates an Aggregator over the given backends. timeout
// bounds each individual backend call; a timed-out backend counts as
// failed without affecting its siblings.
func NewAggregator(timeout time.Duration, backends ...Backend) *Aggregator {
	return &Aggregator{
		backends: backends,
		timeout:  timeout,
	}
}

// Gather queries all backends concurrently and waits for every call to
// settle before composing the combined context. Successful contributions
// are concatenated in backend order, separated by blank lines. Failures
// of individual backends are logged and swallowed.
func (a *Aggregator) Gather(ctx context.Context, query string) (out Context) {
	logger := contextutil.LoggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "search aggregation panicked", "panic", r)
			out = Context{Status: StatusDegraded, Text: FallbackUnavailable}
		}
	}()

	perBackend := make([][]Result, len(a.backends))

	var wg sync.WaitGroup
	for i, backend := range a.backends {
		wg.Add(1)
		go func(i int, backend Backend) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			results, err := backend.Search(callCtx, query)
			if err != nil {
				logger.WarnContext(ctx, "search backend failed", "backend", backend.Name(), "error", err)
				return
			}
			perBackend[i] = results
		}(i, backend)
	}
	wg.Wait()

	var blocks []string
	var urls []string
	for _, results := range perBackend {
		for _, r := range results {
			blocks = append(blocks, formatBlock(r))
			if r.URL != "" {
				urls = append(urls, r.URL)
			}
		}
	}

	if len(blocks) == 0 {
		logger.InfoContext(ctx, "no search backend contributed results", "query", query)
		return Context{Status: StatusEmpty, Text: FallbackNoResults}
	}

	return Context{
		Status:     StatusOK,
		Text:       strings.Join(blocks, "\n\n"),
		SourceURLs: urls,
	}
}
