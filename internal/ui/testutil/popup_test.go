package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui/popup"
)

// mockPopup is a simple popup implementation for testing the harness.
type mockPopup struct {
	content    string
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string       { return m.content }
func (m *mockPopup) SetSize(_, _ int)  {}

func TestPopupHarness_InitCaptured(t *testing.T) {
	h := NewPopupHarness(&mockPopup{})

	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 init command, got %d", len(h.Commands()))
	}
	h.ClearCommands()
	if h.LastCommand() != nil {
		t.Error("LastCommand() should be nil after clear")
	}
}

func TestPopupHarness_Keys(t *testing.T) {
	mock := &mockPopup{}
	h := NewPopupHarness(mock)
	h.ClearCommands()

	h.SendKey("a")
	h.SendUp()
	h.SendDown()
	h.SendEscape()
	h.SendEnter()

	want := []string{"a", "up", "down", "esc", "enter"}
	if len(mock.keyHistory) != len(want) {
		t.Fatalf("key history = %v, want %v", mock.keyHistory, want)
	}
	for i := range want {
		if mock.keyHistory[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, mock.keyHistory[i], want[i])
		}
	}
	if msg := ExecuteCmd(h.LastCommand()); msg != "enter-pressed" {
		t.Errorf("last command result = %v", msg)
	}
}

func TestPopupHarness_ViewContains(t *testing.T) {
	h := NewPopupHarness(&mockPopup{content: "\x1b[1mHello\x1b[0m World"})

	if !h.ViewContains("Hello World") {
		t.Error("ViewContains should see through styling")
	}
	if h.ViewContains("Goodbye") {
		t.Error("ViewContains should not find 'Goodbye'")
	}
}
