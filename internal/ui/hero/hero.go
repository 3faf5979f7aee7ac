// Package hero renders the page's opening section with its rotating titles.
package hero

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/markup"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// RotateMsg starts hiding the current title.
type RotateMsg struct{ Version int }

// ShowMsg reveals the next title after the fade.
type ShowMsg struct{ Version int }

// Model is the hero section state.
type Model struct {
	ui.Base
	owner   content.Owner
	hero    content.Hero
	links   []content.Link
	rotate  time.Duration
	fade    time.Duration
	title   int
	hidden  bool
	version int
}

// New creates the hero for p. rotate is the time each title stays and fade
// how long it is hidden before the next one appears.
func New(p *content.Portfolio, rotate, fade time.Duration) *Model {
	return &Model{
		owner:  p.Owner,
		hero:   p.Hero,
		links:  p.Contact.Links,
		rotate: rotate,
		fade:   fade,
	}
}

// Init starts the rotation.
func (m *Model) Init() tea.Cmd {
	return m.Start()
}

// Start (re)starts the rotation. Ticks from an earlier start are ignored.
func (m *Model) Start() tea.Cmd {
	if len(m.hero.Titles) < 2 {
		return nil
	}
	m.version++
	m.hidden = false
	return rotateCmd(m.rotate, m.version)
}

// Stop cancels the rotation and shows the current title.
func (m *Model) Stop() {
	m.version++
	m.hidden = false
}

// Title returns the displayed title, or "" while it is hidden.
func (m *Model) Title() string {
	if m.hidden {
		return ""
	}
	return m.hero.Title(m.title)
}

// TitleIndex returns the index of the current title.
func (m *Model) TitleIndex() int {
	return m.title
}

// Update advances the rotation.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RotateMsg:
		if msg.Version != m.version {
			return nil
		}
		m.hidden = true
		return tea.Batch(rotateCmd(m.rotate, m.version), showCmd(m.fade, m.version))
	case ShowMsg:
		if msg.Version != m.version {
			return nil
		}
		m.title = (m.title + 1) % len(m.hero.Titles)
		m.hidden = false
	}
	return nil
}

func rotateCmd(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return RotateMsg{Version: version} })
}

func showCmd(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ShowMsg{Version: version} })
}

// View renders the hero at the model width. The title line keeps its
// height while hidden so the page layout does not jump.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	lines := []string{
		"",
		s.Tag.Render(m.hero.Badge),
		"",
		s.Muted.Render(m.hero.Greeting),
		styles.NameGradient(render.Truncate(m.owner.Name, width)),
		s.Heading.Render(render.Truncate(m.Title(), width)),
		"",
	}

	summary := markup.Terminal(m.hero.Summary, s.Title, s.Base.Italic(true))
	for para := range strings.SplitSeq(summary, "\n") {
		lines = append(lines, render.Wrap(para, width)...)
	}

	if len(m.links) > 0 {
		parts := make([]string, len(m.links))
		for i, l := range m.links {
			parts[i] = s.Link.Render(icons.FormatLink(l.Label))
		}
		lines = append(lines, "")
		lines = append(lines, render.Wrap(strings.Join(parts, "  "), width)...)
	}

	if m.hero.ScrollHint != "" {
		lines = append(lines, "", s.Subtle.Render(m.hero.ScrollHint+" ↓"))
	}
	return strings.Join(lines, "\n")
}
