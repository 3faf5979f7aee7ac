// Package showcase renders the static card sections: achievements,
// projects and featured projects.
package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Card is one entry of a grid.
type Card struct {
	Icon     string
	Title    string
	Subtitle string // tagline or kind
	Meta     string // period, muted
	Golden   bool
	Details  []content.Detail
	Points   []string
	Tags     []string
	Links    []content.Link
}

// Model is a titled grid of cards.
type Model struct {
	ui.Base
	title   string
	cards   []Card
	columns int // columns on wide terminals
}

const gap = 2

// New creates a grid with the given number of columns on wide terminals.
// Narrow terminals always use one column.
func New(title string, cards []Card, columns int) *Model {
	return &Model{title: title, cards: cards, columns: max(columns, 1)}
}

// Achievements builds the achievements grid. Golden achievements are
// accented.
func Achievements(items []content.Achievement) *Model {
	cards := make([]Card, len(items))
	for i, a := range items {
		cards[i] = Card{
			Icon:     icons.Trophy(),
			Title:    a.Title,
			Subtitle: a.Kind,
			Golden:   a.Golden,
			Details:  a.Details,
		}
	}
	return New("Achievements", cards, 2)
}

// Projects builds the projects grid.
func Projects(items []content.Project) *Model {
	cards := make([]Card, len(items))
	for i, p := range items {
		c := Card{
			Icon:     icons.Code(),
			Title:    p.Title,
			Subtitle: p.Kind,
			Meta:     p.Period,
			Points:   p.Points,
		}
		if p.Repo != "" {
			c.Links = []content.Link{{Label: "GitHub", URL: p.Repo}}
		}
		cards[i] = c
	}
	return New("Projects", cards, 3)
}

// Featured builds the featured projects list, one full-width card each.
func Featured(items []content.Featured) *Model {
	cards := make([]Card, len(items))
	for i, f := range items {
		c := Card{
			Icon:     icons.Star(),
			Title:    f.Title,
			Subtitle: f.Tagline,
			Points:   f.Points,
			Tags:     f.Tech,
		}
		if f.Live != "" {
			c.Links = append(c.Links, content.Link{Label: "Live", URL: f.Live})
		}
		if f.Repo != "" {
			c.Links = append(c.Links, content.Link{Label: "GitHub", URL: f.Repo})
		}
		cards[i] = c
	}
	return New("Featured Projects", cards, 1)
}

// Len returns the number of cards.
func (m *Model) Len() int { return len(m.cards) }

// Columns returns the number of grid columns at the current width.
func (m *Model) Columns() int {
	if m.IsNarrow() {
		return 1
	}
	return min(m.columns, max(len(m.cards), 1))
}

// View renders the heading and the grid.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 || len(m.cards) == 0 {
		return ""
	}
	s := styles.T().S()

	cols := m.Columns()
	cardWidth := max((width-gap*(cols-1))/cols, 4)

	rows := []string{s.Heading.Render(m.title), ""}
	for start := 0; start < len(m.cards); start += cols {
		end := min(start+cols, len(m.cards))
		parts := make([]string, 0, 2*cols)
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, strings.Repeat(" ", gap))
			}
			parts = append(parts, renderCard(m.cards[i], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(c Card, width int) string {
	t := styles.T()
	s := t.S()
	inner := max(width-4, 1)

	titleStyle := s.Title
	if c.Golden {
		titleStyle = s.Golden
	}

	var lines []string
	for _, l := range render.Wrap(c.Icon+c.Title, inner) {
		lines = append(lines, titleStyle.Render(l))
	}
	if c.Subtitle != "" {
		for _, l := range render.Wrap(c.Subtitle, inner) {
			lines = append(lines, s.Muted.Render(l))
		}
	}
	if c.Meta != "" {
		lines = append(lines, s.Subtle.Render(render.Truncate(c.Meta, inner)))
	}
	if len(c.Details) > 0 {
		lines = append(lines, "")
		for _, d := range c.Details {
			line := s.Muted.Render(d.Label+": ") + s.Base.Render(d.Value)
			lines = append(lines, render.Wrap(line, inner)...)
		}
	}
	if len(c.Points) > 0 {
		lines = append(lines, "")
		for _, l := range render.Bullets(c.Points, icons.Bullet(), inner) {
			lines = append(lines, s.Base.Render(l))
		}
	}
	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, tag := range c.Tags {
			tags[i] = s.Tag.Render(tag)
		}
		lines = append(lines, "")
		lines = append(lines, render.Wrap(strings.Join(tags, " "), inner)...)
	}
	for _, l := range c.Links {
		lines = append(lines, s.Link.Render(render.Truncate(icons.FormatLink(l.Label)+" "+l.URL, inner)))
	}

	style := styles.CardStyle(true, width).BorderForeground(t.Border).Faint(false)
	if c.Golden {
		style = style.BorderForeground(t.Gold)
	}
	return style.Render(strings.Join(lines, "\n"))
}
