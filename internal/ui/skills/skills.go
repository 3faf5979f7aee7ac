// Package skills renders the skill tags grouped by category.
package skills

import (
	"strings"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Model is the skills section.
type Model struct {
	ui.Base
	groups []content.SkillGroup
}

// New creates the section for p's skills.
func New(p *content.Portfolio) *Model {
	return &Model{groups: p.SkillGroups()}
}

// Groups returns the categories in display order.
func (m *Model) Groups() []content.SkillGroup { return m.groups }

// View renders one heading per category followed by its tags, packed into
// lines no wider than the model.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 || len(m.groups) == 0 {
		return ""
	}
	s := styles.T().S()

	lines := []string{s.Heading.Render("Skills")}
	for _, g := range m.groups {
		lines = append(lines, "", s.Muted.Render(strings.ToUpper(g.Category)))
		tags := make([]string, len(g.Skills))
		for i, sk := range g.Skills {
			tags[i] = s.Tag.Render(icons.Code() + sk.Name)
		}
		lines = append(lines, render.Pack(tags, " ", width)...)
	}
	return strings.Join(lines, "\n")
}
