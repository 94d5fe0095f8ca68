package search

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leembo/internal/cache"
	"leembo/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedProvider wraps a SearchProvider with a shared cache. Concurrent
// identical searches are collapsed into one upstream call. Cache failures are
// logged and never fail a search.
type CachedProvider struct {
	next    domain.SearchProvider
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
	logger  *zap.Logger
}

// NewCachedProvider wraps next. A nil cache keeps only the request collapsing.
func NewCachedProvider(next domain.SearchProvider, c domain.Cache, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{next: next, cache: c, ttl: ttl, logger: logger}
}

// Search returns cached results when present, otherwise queries next and
// stores the payload. Returned results must be treated as read-only.
func (p *CachedProvider) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	key := cache.SearchResultsKey(query, opts.Depth, opts.IncludeDomains, opts.MaxResults)

	if cached, ok := p.lookup(ctx, key); ok {
		return cached, nil
	}

	res, err, shared := p.sfGroup.Do(key, func() (interface{}, error) {
		results, err := p.next.Search(ctx, query, opts)
		if err != nil {
			return nil, err
		}
		p.store(ctx, key, results)
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		p.logger.Debug("Search result shared with concurrent caller", zap.String("cache_key", key))
	}
	return res.(*domain.SearchResults), nil
}

func (p *CachedProvider) lookup(ctx context.Context, key string) (*domain.SearchResults, bool) {
	if p.cache == nil {
		return nil, false
	}
	raw, err := p.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			p.logger.Warn("Search cache read failed", zap.String("cache_key", key), zap.Error(err))
		}
		return nil, false
	}
	var results domain.SearchResults
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		p.logger.Warn("Discarding corrupt search cache entry", zap.String("cache_key", key), zap.Error(err))
		if delErr := p.cache.Delete(ctx, key); delErr != nil {
			p.logger.Warn("Failed to delete corrupt search cache entry", zap.String("cache_key", key), zap.Error(delErr))
		}
		return nil, false
	}
	p.logger.Debug("Search cache hit", zap.String("cache_key", key))
	return &results, true
}

func (p *CachedProvider) store(ctx context.Context, key string, results *domain.SearchResults) {
	if p.cache == nil || results == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		p.logger.Warn("Failed to encode search results for caching", zap.Error(err))
		return
	}
	if err := p.cache.Set(ctx, key, string(data), p.ttl); err != nil {
		p.logger.Warn("Search cache write failed", zap.String("cache_key", key), zap.Error(err))
	}
}

var _ domain.SearchProvider = (*CachedProvider)(nil)
