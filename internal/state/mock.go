// internal/state/mock.go
package state

// Mock is a test double for Manager. Saves are recorded immediately.
type Mock struct {
	navState *NavigationState
	saves    []NavigationState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.saves = append(m.saves, state)
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) Reset() error {
	m.navState = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) Saves() []NavigationState { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
