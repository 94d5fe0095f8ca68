package domain

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator runs a single prompt against a language model and returns its raw text.
// Failures are reported as errors, never as an empty string.
type TextGenerator interface {
	Run(ctx context.Context, prompt string, expectedOutput string) (string, error)
}

// SearchOptions tunes a web search
type SearchOptions struct {
	Depth          string   `json:"depth"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
}

// SearchResult is a single hit of a web search
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// SearchResults is the free-form payload handed verbatim to prompts
type SearchResults struct {
	Query   string         `json:"query"`
	Answer  string         `json:"answer,omitempty"`
	Results []SearchResult `json:"results"`
}

// String renders the results the way they are embedded in prompts.
func (r *SearchResults) String() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Search query: %s\n", r.Query)
	if r.Answer != "" {
		fmt.Fprintf(&b, "Summary: %s\n", r.Answer)
	}
	for i, res := range r.Results {
		fmt.Fprintf(&b, "%d. %s\n   URL: %s\n   %s\n", i+1, res.Title, res.URL, res.Content)
	}
	return b.String()
}

// SearchProvider queries the web for grounding material.
type SearchProvider interface {
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResults, error)
}
