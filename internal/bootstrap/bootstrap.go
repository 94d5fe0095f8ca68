// Package bootstrap wires configuration into a ready MentorService. The API
// server and the CLI share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"leembo/internal/adapter"
	"leembo/internal/adapter/llm"
	"leembo/internal/adapter/search"
	"leembo/internal/cache"
	"leembo/internal/config"
	"leembo/internal/domain"
	"leembo/internal/generation"
	"leembo/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Components are the long-lived collaborators built from a Config.
type Components struct {
	Mentor service.MentorService
	// Cache is nil when no Redis address is configured.
	Cache domain.Cache

	redisClient *redis.Client
}

// Close releases network resources.
func (c *Components) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

// Build constructs the search provider (cached through Redis when
// configured), the language model and the mentor service.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	if cfg.Search.TavilyAPIKey == "" {
		return nil, errors.New("search.tavily_api_key (or TAVILY_API_KEY) is required")
	}

	comps := &Components{}

	var provider domain.SearchProvider
	tavily, err := search.NewTavily(cfg.Search.TavilyAPIKey, cfg.Search.Timeout,
		search.WithDefaults(cfg.Search.Depth, cfg.Search.MaxResults),
		search.WithLogger(logger.Named("tavily")),
	)
	if err != nil {
		return nil, err
	}
	provider = tavily

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		// Caching is optional.
		logger.Warn("Redis unavailable, search results will not be cached", zap.Error(err))
	} else if redisClient != nil {
		logger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		comps.redisClient = redisClient
		comps.Cache = adapter.NewRedisCacheAdapter(redisClient)
		provider = search.NewCachedProvider(tavily, comps.Cache, cfg.Search.CacheTTL, logger.Named("search_cache"))
	}

	model, err := llm.NewModel(cfg.LLM)
	if err != nil {
		_ = comps.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	logger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	textGenerator := llm.NewTextGenerator(model, cfg.LLM.Temperature, cfg.LLM.Timeout, logger.Named("llm"))
	generator := generation.NewGenerator(textGenerator, cfg.Generation.MaxAttempts, logger.Named("generation"))
	comps.Mentor = service.NewMentorService(generator, provider, cfg.Search.Depth, logger.Named("mentor"))

	return comps, nil
}
