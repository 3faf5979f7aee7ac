// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Link is a navbar entry jumping to a section anchor.
type Link struct {
	Key    string
	Label  string
	Anchor string
}

// Links are the navbar entries in display order.
var Links = []Link{
	{"1", "Home", "hero"},
	{"2", "About", "experience"},
	{"3", "Projects", "projects"},
	{"4", "Contact", "footer"},
}

// Model is the data the header bar is drawn from.
type Model struct {
	Initial string // logo letter
	Name    string // shown beside the logo
	Active  int    // index into Links
	Offset  int    // page scroll offset in lines
	Width   int
}

// Scrolled reports whether the page has moved far enough for the bar to
// draw its bottom rule.
func (m Model) Scrolled() bool {
	return m.Offset > ui.ScrolledThreshold
}

// Height returns the bar height: one line, plus the rule once scrolled.
func (m Model) Height() int {
	if m.Scrolled() {
		return 2
	}
	return 1
}

// ActiveLink returns the index of the last link whose anchor starts at or
// above the viewport top. anchors maps anchor names to page lines; missing
// anchors are skipped.
func ActiveLink(anchors map[string]int, offset int) int {
	active := 0
	for i, l := range Links {
		line, ok := anchors[l.Anchor]
		if ok && line <= offset {
			active = i
		}
	}
	return active
}

// Styles
var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0b1120")).
			Background(styles.T().Primary).
			Bold(true).
			Padding(0, 1)

	keyStyle       = lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
	separatorStyle = lipgloss.NewStyle().Foreground(styles.T().Border)
)

// Render returns the header bar for m.Width. On narrow terminals the links
// collapse into the menu hint.
func Render(m Model) string {
	if m.Width < 20 {
		return ""
	}

	logo := logoStyle.Render(m.Initial) + " " + styles.T().S().Title.Render(m.Name)

	var right string
	if layout.IsNarrowMode(m.Width) {
		right = keyStyle.Render("m") + " " + styles.T().S().Muted.Render("≡ Menu")
	} else {
		parts := make([]string, 0, len(Links))
		for i, l := range Links {
			parts = append(parts, keyStyle.Render(l.Key)+" "+styles.Emphasis(l.Label, i == m.Active))
		}
		right = strings.Join(parts, separatorStyle.Render(" │ "))
	}

	bar := render.Row(" "+logo, right+" ", m.Width)
	if m.Scrolled() {
		bar += "\n" + separatorStyle.Render(render.Separator(m.Width))
	}
	return bar
}
