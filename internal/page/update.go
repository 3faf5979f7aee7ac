// internal/page/update.go
package page

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/gallery"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/helpbindings"
	"github.com/llehouerou/folio/internal/ui/hero"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/navmenu"
	"github.com/llehouerou/folio/internal/ui/popup"
)

// wheelStep is the number of lines (or columns) one wheel notch scrolls.
const wheelStep = 3

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.FireMsg:
		msg.Run()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case hero.RotateMsg, hero.ShowMsg:
		return m, m.hero.Update(msg)

	case gallery.FrameMsg:
		return m, m.gallery.Update(msg)

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
	if m.popup != nil {
		m.popup.SetSize(m.width, m.height)
	}
	return m, nil
}

// relayout re-renders every block at the current width, places the
// timeline entries and clamps the offset.
func (m *Model) relayout() {
	m.layout.Resize(m.width)
	if b, ok := m.layout.Block("experience"); ok {
		m.geo.PlaceSpans(b.Top, m.timeline.Spans())
	}
	m.offset.Clamp(m.layout.Total(), m.scrollHeight())
	m.syncViewport()
}

// header returns the navbar state for the current offset.
func (m Model) header() headerbar.Model {
	return headerbar.Model{
		Initial: m.portfolio.Owner.Initial(),
		Name:    m.portfolio.Owner.ShortName(),
		Active:  headerbar.ActiveLink(m.layout.Anchors(), m.offset.Pos()),
		Offset:  m.offset.Pos(),
		Width:   m.width,
	}
}

func (m Model) viewportHeight() int {
	return layout.ViewportHeight(m.height, m.header().Height(), m.notification != "")
}

// scrollHeight is the viewport height once the navbar shows its rule. Offset
// clamping uses it so a revealed block stays visible after the bar grows.
func (m Model) scrollHeight() int {
	h := m.header()
	h.Offset = ui.ScrolledThreshold + 1
	return layout.ViewportHeight(m.height, h.Height(), m.notification != "")
}

// syncViewport moves the tracked viewport to the offset and lets the
// observer report visibility changes.
func (m *Model) syncViewport() {
	m.geo.SetViewport(m.offset.Pos(), m.viewportHeight())
	m.observer.Check()
}

// afterScroll runs after every page offset change.
func (m *Model) afterScroll() {
	m.syncViewport()
	m.saveNavigation()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.popup != nil {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}

	key := msg.String()
	act := m.resolver.Resolve(key)
	if act != keymap.ActionQuit && m.notification != "" {
		m.notification = ""
		m.relayout()
	}

	switch act {
	case keymap.ActionQuit:
		m.Close()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.openHelp()
	case keymap.ActionMenu:
		m.openPopup(PopupMenu, navmenu.New(headerbar.ActiveLink(m.layout.Anchors(), m.offset.Pos())))
	case keymap.ActionJumpHome, keymap.ActionJumpAbout, keymap.ActionJumpProjects, keymap.ActionJumpContact:
		m.jumpToLink(key)
	case keymap.ActionFocusNextRow:
		m.cycleFocus(1)
	case keymap.ActionFocusPrevRow:
		m.cycleFocus(-1)
	case keymap.ActionRowLeft:
		m.scrollRow(-1)
	case keymap.ActionRowRight:
		m.scrollRow(1)
	case keymap.ActionClearFocus:
		m.setFocus(FocusNone)
	default:
		if m.offset.HandleKey(key, m.layout.Total(), m.scrollHeight()) {
			m.afterScroll()
		}
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popup != nil || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := wheelStep
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -wheelStep
		}
		if msg.Shift {
			m.scrollRowAt(msg.Y, delta)
			return m, nil
		}
		if m.offset.By(delta, m.layout.Total(), m.scrollHeight()) {
			m.afterScroll()
		}
	case tea.MouseButtonWheelLeft:
		m.scrollRowAt(msg.Y, -wheelStep)
	case tea.MouseButtonWheelRight:
		m.scrollRowAt(msg.Y, wheelStep)
	}
	return m, nil
}

// scrollRowAt scrolls the row under screen line y by delta columns.
func (m *Model) scrollRowAt(y, delta int) {
	line := m.offset.Pos() + y - m.header().Height()
	switch m.layout.SectionAt(line) {
	case "education":
		m.education.ScrollBy(delta)
	case "graphics":
		m.gallery.ScrollBy(delta)
	}
}

// scrollRow scrolls the focused row by one card in direction dir.
func (m *Model) scrollRow(dir int) {
	switch m.focus {
	case FocusEducation:
		m.education.ScrollCards(dir)
	case FocusGraphics:
		m.gallery.ScrollTiles(dir)
	case FocusNone:
	}
}

// rows are the focusable rows in page order.
var rows = []Focus{FocusEducation, FocusGraphics}

// cycleFocus moves the focus to the next (dir > 0) or previous row,
// wrapping around. With no row focused it starts from the first or last.
func (m *Model) cycleFocus(dir int) {
	next := 0
	if dir < 0 {
		next = len(rows) - 1
	}
	for i, f := range rows {
		if f == m.focus {
			next = (i + dir + len(rows)) % len(rows)
		}
	}
	m.setFocus(rows[next])
}

// setFocus moves the row focus and scrolls the page so the focused row is
// visible.
func (m *Model) setFocus(f Focus) {
	if f == m.focus {
		return
	}
	m.focus = f
	m.education.SetFocused(f == FocusEducation)
	m.gallery.SetFocused(f == FocusGraphics)
	if anchor := f.String(); anchor != "" {
		if b, ok := m.layout.Block(anchor); ok {
			m.offset.Reveal(b.Top, b.Top+b.Height, m.layout.Total(), m.scrollHeight())
		}
	}
	m.afterScroll()
}

// jumpToLink jumps to the navbar link bound to key.
func (m *Model) jumpToLink(key string) {
	for _, l := range headerbar.Links {
		if l.Key == key {
			m.jumpTo(l.Anchor)
			return
		}
	}
}

// jumpTo scrolls the page so the anchor's block starts at the top.
func (m *Model) jumpTo(anchor string) {
	b, ok := m.layout.Block(anchor)
	if !ok {
		log.Printf("page: unknown anchor %q", anchor)
		return
	}
	m.offset.To(b.Top, m.layout.Total(), m.scrollHeight())
	m.afterScroll()
}

func (m *Model) openHelp() {
	help := helpbindings.New()
	help.SetContexts([]string{"global", "page", "row"})
	m.openPopup(PopupHelp, &help)
}

func (m *Model) openPopup(kind PopupKind, p popup.Popup) {
	p.SetSize(m.width, m.height)
	m.popup = p
	m.popupFor = kind
}

func (m *Model) closePopup() {
	m.popup = nil
	m.popupFor = PopupNone
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "navmenu":
		m.closePopup()
		if sel, ok := msg.Action.(navmenu.Select); ok {
			m.jumpTo(sel.Anchor)
		}
	case "helpbindings":
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.closePopup()
		}
	}
	return m, nil
}
