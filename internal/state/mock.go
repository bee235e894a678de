// internal/state/mock.go
package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	kv         map[string]string
	queueState *QueueState
	saves      int
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{kv: make(map[string]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) Get(key string) (string, bool, error) {
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	m.kv[key] = value
	return nil
}

func (m *Mock) SaveQueue(state QueueState) {
	m.saves++
	m.queueState = &state
}

func (m *Mock) GetQueue() (*QueueState, error) {
	return m.queueState, nil
}

func (m *Mock) Flush() {}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetQueue(state *QueueState) { m.queueState = state }

func (m *Mock) QueueSaves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
