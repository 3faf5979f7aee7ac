// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/scroll"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "page", "row", "menu"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global": "Global",
	"page":   "Page",
	"row":    "Card Rows",
	"menu":   "Menu",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	all       []keymap.Binding
	bindings  []keymap.Binding // all, narrowed by the filter
	lines     []string
	offset    scroll.Offset
	filter    textinput.Model
	filtering bool
}

// New creates a new help bindings model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter keys"
	ti.CharLimit = 64
	return Model{filter: ti}
}

// SetContexts sets which binding contexts to display, in category order.
func (m *Model) SetContexts(contexts []string) {
	m.all = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.all = append(m.all, keymap.ByContext(ctx)...)
		}
	}
	m.applyFilter()
}

// Filter returns the current filter text.
func (m Model) Filter() string { return m.filter.Value() }

// applyFilter keeps the bindings whose description or keys contain the
// filter text, ignoring case, and rebuilds the lines.
func (m *Model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.bindings = m.bindings[:0]
	for _, b := range m.all {
		if q == "" ||
			strings.Contains(strings.ToLower(b.Description), q) ||
			strings.Contains(strings.ToLower(keyLabel(b)), q) {
			m.bindings = append(m.bindings, b)
		}
	}
	m.lines = strings.Split(m.buildContent(), "\n")
	m.offset = scroll.Offset{}
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

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch key := keyMsg.String(); key {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	default:
		m.offset.HandleKey(key, len(m.lines), m.visibleHeight())
	}
	return m, nil
}

// updateFilter sends keys to the filter input. Enter keeps the filter, esc
// clears it.
func (m *Model) updateFilter(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	// Pad to the widest line of the whole list so the popup keeps its
	// width while scrolling.
	maxWidth := 0
	for _, line := range m.lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start, end := m.offset.Visible(len(m.lines), m.visibleHeight())
	visible := make([]string, 0, end-start)
	for _, line := range m.lines[start:end] {
		visible = append(visible, render.PadStyled(line, maxWidth))
	}

	s := styles.T().S()
	var result strings.Builder
	result.WriteString(s.Title.Render("Help"))
	result.WriteString("\n\n")
	if m.filtering || m.filter.Value() != "" {
		result.WriteString(m.filter.View())
		result.WriteString("\n\n")
	}
	result.WriteString(strings.Join(visible, "\n"))
	result.WriteString("\n\n")
	result.WriteString(s.Subtle.Render(m.buildFooter()))
	return result.String()
}

func (m Model) buildContent() string {
	s := styles.T().S()
	if len(m.bindings) == 0 {
		return s.Muted.Render("No matching keys")
	}
	keyStyle := s.Active
	headerStyle := s.Golden

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render(render.Separator(maxKeyWidth + 20)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		sb.WriteString(keyStyle.Render(render.Pad(keyLabel(b), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins the keys of b for display, naming the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.filtering {
		return "enter keep · esc clear"
	}
	if len(m.lines) <= m.visibleHeight() {
		return "/ filter · ?/esc close"
	}
	return "j/k scroll · / filter · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders, margins)
	return max(m.Height()-10, 5)
}
