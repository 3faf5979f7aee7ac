package page

import (
	"strings"

	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerbar.Render(m.header()))

	vh := m.viewportHeight()
	lines := m.layout.Lines()
	start := min(m.offset.Pos(), len(lines))
	end := min(start+vh, len(lines))
	visible := lines[start:end]
	for range vh - len(visible) {
		visible = append(visible, "")
	}
	for _, line := range visible {
		b.WriteString("\n")
		b.WriteString(render.PadStyled(line, m.width))
	}

	if m.notification != "" {
		b.WriteString("\n")
		b.WriteString(styles.T().S().Error.Render(render.Truncate(m.notification, m.width)))
	}

	view := enforceHeight(b.String(), m.height)
	if m.popup != nil {
		size := popup.SizeAuto
		if m.popupFor == PopupMenu {
			size = popup.SizeMenu
		}
		overlay := popup.RenderBordered(m.popup.View(), m.width, m.height, size)
		view = popup.Compose(view, overlay, m.width, m.height)
	}
	return view
}

// enforceHeight pads or cuts view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
