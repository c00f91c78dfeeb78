package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/internal/service"
)

// MockNotifier is a mock type for the service.Notifier type
type MockNotifier struct {
	mock.Mock
}

// Notify provides a mock function with given fields: ctx, n
func (_m *MockNotifier) Notify(ctx context.Context, n model.Notification) error {
	ret := _m.Called(ctx, n)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Notification) error); ok {
		r0 = rf(ctx, n)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockNotifier creates a new instance of MockNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotifier(t interface {
	mock.TestingT
	Helper()
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.Notifier = (*MockNotifier)(nil)
