// Package llm adapts langchaingo models to domain.TextGenerator.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leembo/internal/config"
	"leembo/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ErrEmptyResponse is returned when the model answers with blank text.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// TextGenerator runs single prompts against a langchaingo model.
type TextGenerator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

// NewTextGenerator wraps an already constructed model.
func NewTextGenerator(model llms.Model, temperature float64, timeout time.Duration, logger *zap.Logger) *TextGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextGenerator{model: model, temperature: temperature, timeout: timeout, logger: logger}
}

// NewModel builds the langchaingo model selected by cfg.Provider.
func NewModel(cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		httpClient := &http.Client{Timeout: cfg.Timeout}
		m, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return m, nil
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		m, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// Run sends prompt, followed by the expected output description, to the
// model. Blank answers are reported as ErrEmptyResponse.
func (g *TextGenerator) Run(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	fullPrompt := prompt
	if expectedOutput != "" {
		fullPrompt = fmt.Sprintf("%s\n\nExpected output: %s", prompt, expectedOutput)
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, fullPrompt, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("LLM call failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("llm call failed: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("LLM response received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("length", len(response)))
	return response, nil
}

var _ domain.TextGenerator = (*TextGenerator)(nil)
