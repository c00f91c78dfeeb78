package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// MockAIClient is a mock type for the ai.Client type
type MockAIClient struct {
	mock.Mock
}

// GenerateText provides a mock function with given fields: ctx, systemPrompt, userPrompt, params
func (_m *MockAIClient) GenerateText(ctx context.Context, systemPrompt string, userPrompt string, params ai.GenerationParams) (string, error) {
	ret := _m.Called(ctx, systemPrompt, userPrompt, params)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string, ai.GenerationParams) string); ok {
		r0 = rf(ctx, systemPrompt, userPrompt, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, ai.GenerationParams) error); ok {
		r1 = rf(ctx, systemPrompt, userPrompt, params)
	} else {
		err := ret.Error(1)
		if err != nil {
			r1 = err
		}
	}

	return r0, r1
}

// NewMockAIClient creates a new instance of MockAIClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAIClient(t interface {
	mock.TestingT
	Helper()
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.Client = (*MockAIClient)(nil)
