package agent

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of AgentClient for testing.
type MockClient struct {
	SendFunc  func(ctx context.Context, message string) (string, error)
	Reply     string
	Err       error
	SendCalls []string
	mu        sync.Mutex
}

// Send implements the AgentClient interface.
func (m *MockClient) Send(ctx context.Context, message string) (string, error) {
	m.mu.Lock()
	m.SendCalls = append(m.SendCalls, message)
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, message)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
