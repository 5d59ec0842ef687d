package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

const mockModel = "mock"

var errMockDrained = errors.New("mock provider has no replies left")

// MockResponse is one canned reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records every request.
// It backs the "mock" provider setting and the tests. With Strict set, a
// reply is checked against the request schema like the real providers do.
type MockProvider struct {
	Strict bool

	// Calls holds every request received, in order.
	Calls []Request

	mu      sync.Mutex
	replies []MockResponse
}

// NewMockProvider queues the given replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

// Generate pops the next reply. A drained queue looks like an outage, so
// callers fall back to built-in lessons.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{Err: errMockDrained}
	}
	next := m.replies[0]
	m.replies = m.replies[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	if m.Strict {
		if err := req.Schema.Check(next.Content); err != nil {
			return nil, err
		}
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      mockModel,
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return mockModel }

// Push queues more replies.
func (m *MockProvider) Push(replies ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Pending reports how many queued replies are left.
func (m *MockProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.replies)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
