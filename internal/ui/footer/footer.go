// Package footer renders the contact section at the bottom of the page.
package footer

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Model is the footer state.
type Model struct {
	ui.Base
	owner     content.Owner
	contact   content.Contact
	source    string
	updatedAt time.Time
	now       func() time.Time
}

// New creates the footer for p. now is used for the "content updated" line;
// nil uses time.Now.
func New(p *content.Portfolio, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	return &Model{
		owner:     p.Owner,
		contact:   p.Contact,
		source:    p.Source,
		updatedAt: p.UpdatedAt,
		now:       now,
	}
}

// Updated returns the humanized age of the content file, or "" for the
// built-in content.
func (m *Model) Updated() string {
	if m.source == "" || m.updatedAt.IsZero() {
		return ""
	}
	return humanize.RelTime(m.updatedAt, m.now(), "ago", "from now")
}

// View renders the footer.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	c := m.contact

	lines := []string{
		s.Subtle.Render(render.Separator(width)),
		"",
		s.Title.Render(render.Truncate(m.owner.Name, width)),
	}
	if m.owner.Role != "" {
		lines = append(lines, s.Muted.Render(render.Truncate(m.owner.Role, width)))
	}

	lines = append(lines, "", s.Heading.Render("GET IN TOUCH"))
	if c.Email != "" {
		lines = append(lines, m.contactLine(icons.Email(), c.Email, c.MailURL()))
	}
	if c.Phone != "" {
		lines = append(lines,
			m.contactLine(icons.Phone(), c.Phone, c.TelURL()),
			m.contactLine(icons.ForLink("whatsapp"), "WhatsApp", c.WhatsAppURL()),
		)
	}
	if c.Location != "" {
		lines = append(lines, m.contactLine(icons.Location(), c.Location, ""))
	}

	if len(c.Links) > 0 {
		lines = append(lines, "", render.Center(s.Heading.Render("CONNECT ONLINE"), width))
		links := make([]string, len(c.Links))
		for i, l := range c.Links {
			links[i] = s.Link.Render(icons.FormatLink(l.Label))
		}
		for _, l := range render.Pack(links, "   ", width) {
			lines = append(lines, render.Center(l, width))
		}
	}

	if updated := m.Updated(); updated != "" {
		lines = append(lines, "", render.Center(s.Subtle.Render("Content updated "+updated), width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contactLine(icon, label, url string) string {
	s := styles.T().S()
	line := s.Base.Render(icon + label)
	if url != "" && url != label {
		line += s.Subtle.Render("  " + url)
	}
	return ansi.Truncate(line, m.Width(), "...")
}
