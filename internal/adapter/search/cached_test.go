package search

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"leembo/internal/cache"
	"leembo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// countingProvider blocks until release is closed so concurrent callers overlap.
type countingProvider struct {
	calls   int32
	release chan struct{}
	err     error
}

func (p *countingProvider) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return nil, p.err
	}
	return &domain.SearchResults{Query: query, Results: []domain.SearchResult{{Title: "Go by Example", URL: "https://gobyexample.com"}}}, nil
}

var testOpts = domain.SearchOptions{Depth: "advanced"}

func TestCachedProvider_Hit(t *testing.T) {
	c := new(MockCache)
	next := &countingProvider{}
	key := cache.SearchResultsKey("golang", "advanced", nil, 0)
	payload, _ := json.Marshal(domain.SearchResults{Query: "golang", Results: []domain.SearchResult{{Title: "cached"}}})
	c.On("Get", mock.Anything, key).Return(string(payload), nil)

	p := NewCachedProvider(next, c, time.Hour, zap.NewNop())
	res, err := p.Search(context.Background(), "golang", testOpts)

	require.NoError(t, err)
	assert.Equal(t, "cached", res.Results[0].Title)
	assert.EqualValues(t, 0, next.calls)
	c.AssertExpectations(t)
}

func TestCachedProvider_MissStores(t *testing.T) {
	c := new(MockCache)
	next := &countingProvider{}
	key := cache.SearchResultsKey("golang", "advanced", nil, 0)
	c.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss)
	c.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Hour).Return(nil)

	p := NewCachedProvider(next, c, time.Hour, zap.NewNop())
	res, err := p.Search(context.Background(), "golang", testOpts)

	require.NoError(t, err)
	assert.Equal(t, "Go by Example", res.Results[0].Title)
	assert.EqualValues(t, 1, next.calls)
	c.AssertExpectations(t)
}

func TestCachedProvider_CacheFailuresAreIgnored(t *testing.T) {
	c := new(MockCache)
	next := &countingProvider{}
	c.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis down"))
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	p := NewCachedProvider(next, c, time.Hour, zap.NewNop())
	res, err := p.Search(context.Background(), "golang", testOpts)

	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestCachedProvider_CorruptEntryIsDeleted(t *testing.T) {
	c := new(MockCache)
	next := &countingProvider{}
	c.On("Get", mock.Anything, mock.Anything).Return("{not json", nil)
	c.On("Delete", mock.Anything, mock.Anything).Return(nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p := NewCachedProvider(next, c, time.Hour, zap.NewNop())
	_, err := p.Search(context.Background(), "golang", testOpts)

	require.NoError(t, err)
	assert.EqualValues(t, 1, next.calls)
	c.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCachedProvider_PropagatesUpstreamError(t *testing.T) {
	upstream := domain.NewCollaboratorError("tavily search", errors.New("timeout"))
	p := NewCachedProvider(&countingProvider{err: upstream}, nil, time.Hour, nil)

	_, err := p.Search(context.Background(), "golang", testOpts)
	assert.ErrorIs(t, err, upstream)
}

func TestCachedProvider_CollapsesConcurrentSearches(t *testing.T) {
	next := &countingProvider{release: make(chan struct{})}
	p := NewCachedProvider(next, nil, time.Hour, nil)

	const callers = 8
	var wg sync.WaitGroup
	var started sync.WaitGroup
	results := make([]*domain.SearchResults, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		started.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			res, err := p.Search(context.Background(), "golang", testOpts)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(next.release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&next.calls))
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
