package sheets

import (
	"context"
	"sync"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// MockFetcher is a mock implementation of DatasetFetcher for testing.
type MockFetcher struct {
	FetchFunc  func(ctx context.Context, sheetName string) (*model.Dataset, error)
	Dataset    *model.Dataset
	Err        error
	FetchCalls []string
	mu         sync.Mutex
}

// NewMockFetcher creates a mock fetcher that always returns the given dataset.
func NewMockFetcher(dataset *model.Dataset) *MockFetcher {
	return &MockFetcher{Dataset: dataset}
}

// Fetch implements the DatasetFetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, sheetName string) (*model.Dataset, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, sheetName)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, sheetName)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Dataset, nil
}

// CallCount returns how many times Fetch was called.
func (m *MockFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}
