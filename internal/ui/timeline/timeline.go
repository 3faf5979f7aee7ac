// Package timeline renders the experience section: a vertical list of jobs
// on a rail, with the job most visible in the page viewport highlighted.
package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/tracker"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Heading is the static text of the section header.
type Heading struct {
	Badge   string
	Title   string
	Tagline string
}

// DefaultHeading is used when the caller passes a zero Heading.
var DefaultHeading = Heading{
	Badge:   "Career & Innovation",
	Title:   "Experience",
	Tagline: "A showcase of professional roles and key engineering projects.",
}

const (
	headerWidth   = 28
	columnGap     = 3
	railWidth     = 3
	barLong       = 12
	barShort      = 6
	entrySpacing  = 1
	narrowRailPad = 2
)

// Span is the line range of one entry inside the rendered block.
type Span struct {
	ID     string
	Top    int
	Height int
}

// Model is the timeline state.
type Model struct {
	ui.Base
	heading Heading
	jobs    []content.Job
	reg     *tracker.Registry
	trk     *tracker.Tracker
}

// New creates the timeline. The tracker selects the last job reported at or
// above threshold by the visibility source passed to Observe.
func New(heading Heading, jobs []content.Job, threshold float64) (*Model, error) {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	reg, err := tracker.NewRegistry(ids...)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	if heading == (Heading{}) {
		heading = DefaultHeading
	}
	return &Model{
		heading: heading,
		jobs:    jobs,
		reg:     reg,
		trk: tracker.New(reg, nil, tracker.Options{
			Strategy:  tracker.VisibilityRatio,
			Axis:      tracker.Vertical,
			Threshold: threshold,
		}),
	}, nil
}

// Registry returns the job ids in display order, for the visibility source.
func (m *Model) Registry() *tracker.Registry { return m.reg }

// Observe subscribes the tracker to src.
func (m *Model) Observe(src tracker.VisibilitySource) { m.trk.Observe(src) }

// Tracker exposes the timeline's tracker.
func (m *Model) Tracker() *tracker.Tracker { return m.trk }

// Current returns the index of the highlighted job.
func (m *Model) Current() int { return m.trk.Current() }

// Close unsubscribes the tracker.
func (m *Model) Close() { m.trk.Close() }

// textWidth returns the width available to entry text.
func (m *Model) textWidth() int {
	if m.IsNarrow() {
		return max(m.Width()-narrowRailPad, 1)
	}
	return max(m.Width()-headerWidth-columnGap-railWidth, 1)
}

// Spans returns where each entry sits in the block returned by View. Spans
// only depend on the width, not on which entry is highlighted.
func (m *Model) Spans() []Span {
	if m.Width() <= 0 {
		return nil
	}
	top := 0
	if m.IsNarrow() {
		top = len(m.headerLines(false))
	}
	spans := make([]Span, len(m.jobs))
	for i, j := range m.jobs {
		h := len(m.entryText(j))
		spans[i] = Span{ID: j.ID, Top: top, Height: h}
		top += h + entrySpacing
	}
	return spans
}

// View renders the block at the model width.
func (m *Model) View() string {
	if m.Width() <= 0 {
		return ""
	}
	if m.IsNarrow() {
		return m.viewNarrow()
	}
	return m.viewWide()
}

func (m *Model) viewWide() string {
	current := m.trk.Current()
	header := lipgloss.NewStyle().Width(headerWidth).Render(
		strings.Join(m.headerLines(true), "\n"),
	)

	var rows []string
	for i, j := range m.jobs {
		if i > 0 {
			for range entrySpacing {
				rows = append(rows, m.railLine(i-1, current, false))
			}
		}
		rows = append(rows, m.entryLines(i, j, i == current)...)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		header,
		strings.Repeat(" ", columnGap),
		strings.Join(rows, "\n"),
	)
}

func (m *Model) viewNarrow() string {
	s := styles.T().S()
	lines := m.headerLines(false)
	pad := strings.Repeat(" ", narrowRailPad)
	for i, j := range m.jobs {
		if i > 0 {
			for range entrySpacing {
				lines = append(lines, "")
			}
		}
		for k, line := range m.entryText(j) {
			switch k {
			case 1:
				line = s.Title.Render(line)
			case 0, 2:
				line = s.Muted.Render(line)
			default:
				line = s.Base.Render(line)
			}
			lines = append(lines, pad+line)
		}
	}
	return strings.Join(lines, "\n")
}

// headerLines renders the section header. The wide variant also lists one
// progress bar per job, long for the highlighted one.
func (m *Model) headerLines(progress bool) []string {
	s := styles.T().S()
	width := headerWidth
	if !progress {
		width = m.Width()
	}
	lines := []string{
		s.Tag.Render(render.Truncate(m.heading.Badge, max(width-2, 1))),
		"",
		s.Heading.Render(render.Truncate(m.heading.Title, width)),
		s.Subtle.Render(render.Separator(min(12, width))),
	}
	for _, l := range render.Wrap(m.heading.Tagline, width) {
		lines = append(lines, s.Muted.Render(l))
	}
	lines = append(lines, "")
	if !progress {
		return lines
	}

	current := m.trk.Current()
	for i := range m.jobs {
		if i == current {
			lines = append(lines, s.Active.Render(strings.Repeat("━", barLong)))
		} else {
			lines = append(lines, s.Subtle.Render(strings.Repeat("━", barShort)))
		}
	}
	return lines
}

// entryText returns the unstyled lines of one entry wrapped to the text
// width: period, title, company, then bullets.
func (m *Model) entryText(j content.Job) []string {
	tw := m.textWidth()
	company := j.Company
	if j.Location != "" {
		company += " (" + j.Location + ")"
	}
	lines := []string{
		render.Truncate("◷ "+j.Period, tw),
		render.Truncate(j.Title, tw),
		render.Truncate(company, tw),
	}
	return append(lines, render.Bullets(j.Points, icons.Bullet(), tw)...)
}

// entryLines renders one wide entry with its rail segment.
func (m *Model) entryLines(i int, j content.Job, active bool) []string {
	s := styles.T().S()
	text := m.entryText(j)
	out := make([]string, len(text))
	for k, line := range text {
		switch {
		case k == 1:
			line = styles.Emphasis(line, active)
		case active && k == 2:
			line = s.Base.Render(line)
		case active:
			line = s.Muted.Render(line)
		default:
			line = s.Subtle.Render(line)
		}
		out[k] = m.railLine(i, m.trk.Current(), k == 0) + line
	}
	return out
}

// railLine returns the rail prefix for a line belonging to entry i. The
// first line of an entry carries its dot.
func (m *Model) railLine(i, current int, dot bool) string {
	s := styles.T().S()
	style := s.Subtle
	if i == current {
		style = s.Active
	}
	switch {
	case dot && i == current:
		return style.Render("◆") + "  "
	case dot:
		return style.Render("◇") + "  "
	case i == len(m.jobs)-1:
		return "   "
	default:
		return style.Render("│") + "  "
	}
}
