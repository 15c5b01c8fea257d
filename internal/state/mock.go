// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	position *PositionState
	saves    []PositionState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SavePosition(state PositionState) {
	m.position = &state
	m.saves = append(m.saves, state)
}

func (m *Mock) GetPosition() (*PositionState, error) {
	return m.position, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPosition(state *PositionState) { m.position = state }

func (m *Mock) Saves() []PositionState { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
