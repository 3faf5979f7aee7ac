// Package navmenu provides the navigation menu popup shown in place of the
// navbar links on narrow terminals.
package navmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/styles"
)

const source = "navmenu"

// Select asks the page to jump to a section anchor. The menu closes itself.
type Select struct {
	Anchor string
}

// ActionType implements action.Action.
func (a Select) ActionType() string { return "navmenu.select" }

// Close signals the menu should close without navigating.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "navmenu.close" }

var _ popup.Popup = (*Model)(nil)

var resolver = keymap.NewResolver(keymap.ByContext("menu"))

// Model is the menu state.
type Model struct {
	ui.Base
	cursor int
}

// New creates a menu with the cursor on the active link.
func New(active int) *Model {
	return &Model{cursor: min(max(active, 0), len(headerbar.Links)-1)}
}

// Cursor returns the highlighted link index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	for _, l := range headerbar.Links {
		if key == l.Key {
			return m, action.Cmd(source, Select{Anchor: l.Anchor})
		}
	}

	switch resolver.Resolve(key) {
	case keymap.ActionMoveDown:
		m.cursor = (m.cursor + 1) % len(headerbar.Links)
	case keymap.ActionMoveUp:
		m.cursor = (m.cursor - 1 + len(headerbar.Links)) % len(headerbar.Links)
	case keymap.ActionSelect:
		return m, action.Cmd(source, Select{Anchor: headerbar.Links[m.cursor].Anchor})
	case keymap.ActionClose:
		return m, action.Cmd(source, Close{})
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Menu"))
	b.WriteString("\n\n")
	for i, l := range headerbar.Links {
		marker := "  "
		if i == m.cursor {
			marker = "› "
		}
		b.WriteString(styles.Emphasis(marker+l.Label, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render("enter open · esc close"))
	return b.String()
}
