package service

import (
	"context"

	"leembo/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Run(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	args := m.Called(ctx, prompt, expectedOutput)
	return args.String(0), args.Error(1)
}

// --- MockSearchProvider ---
type MockSearchProvider struct {
	mock.Mock
}

func (m *MockSearchProvider) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResults), args.Error(1)
}
