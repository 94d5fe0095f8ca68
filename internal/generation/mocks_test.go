package generation

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTextGenerator is a mock implementation of domain.TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Run(ctx context.Context, prompt string, expectedOutput string) (string, error) {
	args := m.Called(ctx, prompt, expectedOutput)
	return args.String(0), args.Error(1)
}
