package mocks

import (
	"context"

	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockNumberDispatcher is a testify mock of service.NumberDispatcher
type MockNumberDispatcher struct {
	mock.Mock
}

// NumberToWords is a mock implementation of service.NumberDispatcher.NumberToWords
func (m *MockNumberDispatcher) NumberToWords(ctx context.Context, value domain.IntegerValue) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}

// NumberToDollars is a mock implementation of service.NumberDispatcher.NumberToDollars
func (m *MockNumberDispatcher) NumberToDollars(ctx context.Context, value domain.DecimalValue) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}
