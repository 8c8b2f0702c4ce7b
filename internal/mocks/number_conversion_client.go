package mocks

import (
	"context"
	"sync"
)

// MockNumberConversionClient implements integration.NumberConversionClient
// for testing.
type MockNumberConversionClient struct {
	NumberToWordsFn   func(ctx context.Context, ubiNum string) (string, error)
	NumberToDollarsFn func(ctx context.Context, dNum string) (string, error)

	mu           sync.Mutex
	wordsCalls   []string
	dollarsCalls []string
}

// NumberToWords records ubiNum and delegates to NumberToWordsFn.
func (m *MockNumberConversionClient) NumberToWords(ctx context.Context, ubiNum string) (string, error) {
	m.mu.Lock()
	m.wordsCalls = append(m.wordsCalls, ubiNum)
	m.mu.Unlock()

	if m.NumberToWordsFn != nil {
		return m.NumberToWordsFn(ctx, ubiNum)
	}
	return "", nil
}

// NumberToDollars records dNum and delegates to NumberToDollarsFn.
func (m *MockNumberConversionClient) NumberToDollars(ctx context.Context, dNum string) (string, error) {
	m.mu.Lock()
	m.dollarsCalls = append(m.dollarsCalls, dNum)
	m.mu.Unlock()

	if m.NumberToDollarsFn != nil {
		return m.NumberToDollarsFn(ctx, dNum)
	}
	return "", nil
}

// WordsCalls returns the ubiNum arguments seen so far.
func (m *MockNumberConversionClient) WordsCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.wordsCalls...)
}

// DollarsCalls returns the dNum arguments seen so far.
func (m *MockNumberConversionClient) DollarsCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.dollarsCalls...)
}

// CallCount returns the total number of calls to either operation.
func (m *MockNumberConversionClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wordsCalls) + len(m.dollarsCalls)
}
