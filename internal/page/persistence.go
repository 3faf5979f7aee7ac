package page

import (
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/state"
)

// restoreNavigation loads the saved offset and row focus. The offset is
// clamped on the first resize, once the page has been measured.
func (m *Model) restoreNavigation() {
	if m.deps.State == nil {
		return
	}
	nav, err := m.deps.State.GetNavigation()
	if err != nil {
		m.notification = errmsg.Format(errmsg.OpStateLoad, err)
		return
	}
	if nav == nil {
		return
	}
	m.offset.SetPos(max(nav.Offset, 0))
	m.focus = parseFocus(nav.Focus)
	m.education.SetFocused(m.focus == FocusEducation)
	m.gallery.SetFocused(m.focus == FocusGraphics)
}

func (m *Model) saveNavigation() {
	if m.deps.State == nil || m.closed {
		return
	}
	m.deps.State.SaveNavigation(state.NavigationState{
		Offset:  m.offset.Pos(),
		Section: m.layout.SectionAt(m.offset.Pos()),
		Focus:   m.focus.String(),
	})
}
