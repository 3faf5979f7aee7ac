package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered card style. Active cards get the accent
// border; the rest are drawn faint.
func CardStyle(active bool, width int) lipgloss.Style {
	t := T()
	s := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(max(width-2, 0))
	if active {
		return s.BorderForeground(t.BorderFocus)
	}
	return s.BorderForeground(t.Border).Faint(true)
}

// Emphasis renders text with the active style when active and the muted
// style otherwise.
func Emphasis(text string, active bool) string {
	if active {
		return T().S().Active.Render(text)
	}
	return T().S().Muted.Render(text)
}
