package search

import (
	"fmt"
	"strings"
)

// Status tags how an aggregated context was produced.
type Status int

const (
	// StatusOK means at least one backend contributed results.
	StatusOK Status = iota
	// StatusEmpty means every backend settled without contributing anything.
	StatusEmpty
	// StatusDegraded means search failed outright (orchestration error or
	// all paths down) and the text is a fixed fallback sentence.
	StatusDegraded
)

// Fallback sentences handed to the model when no real context is available.
// Callers must treat both the same way: "no external context available".
const (
	FallbackNoResults   = "No current web information available. Providing response based on training data."
	FallbackUnavailable = "Web search temporarily unavailable. Providing response based on training data."
)

// Context is the aggregated external search context for one enrichment
// call: provider-consumable text plus the citation URLs whose order
// defines the citation index ([1], [2], ...).
type Context struct {
	Status     Status
	Text       string
	SourceURLs []string
}

// formatBlock renders one result as a labeled text block.
func formatBlock(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", r.Source)
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Info: %s\n", truncate(r.Snippet))
	fmt.Fprintf(&b, "URL: %s", r.URL)
	return b.String()
}

// formatCitationBlock renders one result as a numbered citation block.
func formatCitationBlock(index int, r Result) string {
	return fmt.Sprintf("[%d] %s\n%s\nSource: %s", index, r.Title, truncate(r.Snippet), r.URL)
}
