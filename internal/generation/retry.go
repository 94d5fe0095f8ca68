// Package generation drives "ask the model, extract, validate" with a bounded
// number of attempts and a deterministic fallback per artifact kind.
package generation

import (
	"context"
	"encoding/json"
	"errors"

	"leembo/internal/domain"

	"go.uber.org/zap"
)

const DefaultMaxAttempts = 3

// Result is the terminal outcome of a generation: either the first valid
// artifact or the fallback after every attempt failed.
type Result[T any] struct {
	Value        T
	Attempts     int
	FromFallback bool
	Errors       []error
}

// Resolve calls attempt with n = 1..maxAttempts, strictly in sequence, and
// returns the first success. When every attempt fails the fallback value is
// returned. Resolve performs no I/O of its own.
func Resolve[T any](maxAttempts int, attempt func(n int) (T, error), fallback func() T) Result[T] {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var res Result[T]
	for n := 1; n <= maxAttempts; n++ {
		res.Attempts = n
		value, err := attempt(n)
		if err == nil {
			res.Value = value
			return res
		}
		res.Errors = append(res.Errors, err)
	}
	res.Value = fallback()
	res.FromFallback = true
	return res
}

// Decoder turns raw model text into a validated artifact.
type Decoder[T any] func(text string) (T, error)

// JSONDecoder chains an extractor with a validating decoder.
func JSONDecoder[T any](extract func(string) (json.RawMessage, error), decode func(json.RawMessage) (T, error)) Decoder[T] {
	return func(text string) (T, error) {
		payload, err := extract(text)
		if err != nil {
			var zero T
			return zero, err
		}
		return decode(payload)
	}
}

// Request describes one generation step.
type Request[T any] struct {
	Kind     domain.GenerationKind
	Prompt   string
	Expected string
	Decode   Decoder[T]
	Fallback func() T

	// Compose, when set, builds the prompt at the start of every attempt
	// (for example from fresh search results). Its error fails the attempt.
	Compose func(ctx context.Context) (string, error)
}

// Generator binds Resolve to a TextGenerator.
type Generator struct {
	llm         domain.TextGenerator
	maxAttempts int
	logger      *zap.Logger
}

// NewGenerator creates a Generator. A non-positive maxAttempts uses DefaultMaxAttempts.
func NewGenerator(llm domain.TextGenerator, maxAttempts int, logger *zap.Logger) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{llm: llm, maxAttempts: maxAttempts, logger: logger}
}

// MaxAttempts returns the attempt budget of every Run.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Run executes req against the text generator. It never returns an error:
// exhaustion is logged and resolved with req.Fallback.
func Run[T any](ctx context.Context, g *Generator, req Request[T]) Result[T] {
	res := Resolve(g.maxAttempts, func(n int) (T, error) {
		var zero T
		prompt := req.Prompt
		if req.Compose != nil {
			composed, err := req.Compose(ctx)
			if err != nil {
				var collabErr *domain.CollaboratorError
				if !errors.As(err, &collabErr) {
					err = domain.NewCollaboratorError("prompt grounding", err)
				}
				g.logAttempt(req.Kind, n, err)
				return zero, err
			}
			prompt = composed
		}
		text, err := g.llm.Run(ctx, prompt, req.Expected)
		if err != nil {
			err = domain.NewCollaboratorError("text generator", err)
			g.logAttempt(req.Kind, n, err)
			return zero, err
		}
		value, err := req.Decode(text)
		if err != nil {
			g.logAttempt(req.Kind, n, err)
			return zero, err
		}
		return value, nil
	}, req.Fallback)

	if res.FromFallback {
		exhausted := &domain.GenerationExhaustedError{
			Kind:     req.Kind,
			Attempts: res.Attempts,
			Last:     errors.Join(res.Errors...),
		}
		g.logger.Warn("Generation exhausted, using fallback",
			zap.String("kind", string(req.Kind)),
			zap.Int("attempts", res.Attempts),
			zap.Error(exhausted))
	} else {
		g.logger.Debug("Generation succeeded",
			zap.String("kind", string(req.Kind)),
			zap.Int("attempts", res.Attempts))
	}
	return res
}

func (g *Generator) logAttempt(kind domain.GenerationKind, n int, err error) {
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.Int("attempt", n),
		zap.Int("max_attempts", g.maxAttempts),
		zap.Error(err),
	}
	var extractionErr *domain.ExtractionError
	if errors.As(err, &extractionErr) {
		fields = append(fields, zap.String("raw_response", truncate(extractionErr.Raw, 500)))
	}
	g.logger.Warn("Generation attempt failed", fields...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
