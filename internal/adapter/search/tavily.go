// Package search implements domain.SearchProvider on top of the Tavily API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leembo/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.tavily.com/search"
	DefaultDepth    = "basic"

	maxBackoff  = 30 * time.Second
	maxAttempts = 4
)

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey     string
	endpoint   string
	depth      string
	maxResults int
	client     *http.Client
	logger     *zap.Logger
	backoff    time.Duration
}

// TavilyOption configures a Tavily provider.
type TavilyOption func(*Tavily)

func WithEndpoint(endpoint string) TavilyOption {
	return func(t *Tavily) { t.endpoint = endpoint }
}

func WithHTTPClient(client *http.Client) TavilyOption {
	return func(t *Tavily) { t.client = client }
}

// WithDefaults sets the depth and result count used when a search does not
// specify them.
func WithDefaults(depth string, maxResults int) TavilyOption {
	return func(t *Tavily) {
		if depth != "" {
			t.depth = depth
		}
		t.maxResults = maxResults
	}
}

func WithLogger(logger *zap.Logger) TavilyOption {
	return func(t *Tavily) { t.logger = logger }
}

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey string, timeout time.Duration, opts ...TavilyOption) (*Tavily, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	t := &Tavily{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		depth:    DefaultDepth,
		client:   &http.Client{Timeout: timeout},
		logger:   zap.NewNop(),
		backoff:  time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
	IncludeAnswer  bool     `json:"include_answer"`
}

type tavilyResponse struct {
	Query   string `json:"query"`
	Answer  string `json:"answer"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// Search posts a query to Tavily. Rate-limited responses are retried with
// exponential backoff a bounded number of times.
func (t *Tavily) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	reqBody := tavilyRequest{
		APIKey:         t.apiKey,
		Query:          query,
		SearchDepth:    t.depth,
		IncludeDomains: opts.IncludeDomains,
		MaxResults:     t.maxResults,
		IncludeAnswer:  true,
	}
	if opts.Depth != "" {
		reqBody.SearchDepth = opts.Depth
	}
	if opts.MaxResults > 0 {
		reqBody.MaxResults = opts.MaxResults
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := t.post(ctx, payload)
	if err != nil {
		return nil, domain.NewCollaboratorError("tavily search", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, domain.NewCollaboratorError("tavily search",
			fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var decoded tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domain.NewCollaboratorError("tavily search", fmt.Errorf("decode response: %w", err))
	}

	results := &domain.SearchResults{
		Query:   query,
		Answer:  decoded.Answer,
		Results: make([]domain.SearchResult, 0, len(decoded.Results)),
	}
	for _, r := range decoded.Results {
		results.Results = append(results.Results, domain.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
	}

	t.logger.Debug("Tavily search completed",
		zap.String("query", query),
		zap.String("depth", reqBody.SearchDepth),
		zap.Int("results", len(results.Results)))
	return results, nil
}

func (t *Tavily) post(ctx context.Context, payload []byte) (*http.Response, error) {
	delay := t.backoff
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+t.apiKey)

		resp, err := t.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt == maxAttempts {
			return resp, nil
		}
		resp.Body.Close()

		t.logger.Warn("Tavily rate limited, backing off",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < maxBackoff {
			delay *= 2
		}
	}
}

var _ domain.SearchProvider = (*Tavily)(nil)
