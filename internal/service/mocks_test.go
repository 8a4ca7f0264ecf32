package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// --- MockPromptBuilder ---
type MockPromptBuilder struct {
	mock.Mock
}

func (m *MockPromptBuilder) Build(keyword string) (string, error) {
	args := m.Called(keyword)
	return args.String(0), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateContent(ctx context.Context, prompt string) ([]byte, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
