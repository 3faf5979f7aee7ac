// Package carousel renders a horizontally scrolling row of cards whose
// current card follows the card nearest the row's center.
package carousel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/debounce"
	"github.com/llehouerou/folio/internal/tracker"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Card is one entry of the row.
type Card struct {
	ID       string
	Icon     string
	Header   string // small line above the title, e.g. the period
	Title    string
	Subtitle string
	Body     string
}

// Options configures a carousel. Zero values take the tracker defaults.
type Options struct {
	Clock      clock.Clock
	Debounce   time.Duration
	MountDelay time.Duration
	Snap       bool
	CardWidth  int // preferred card width on wide terminals
	Gap        int
}

const (
	defaultCardWidth = 40
	defaultGap       = 2
	cardBodyLines    = 3
	barMaxWidth      = 40
)

// Model is the state of one carousel row.
type Model struct {
	ui.Base
	title string
	cards []Card
	opts  Options

	reg    *tracker.Registry
	geo    *tracker.StaticGeometry
	trk    *tracker.Tracker
	strip  layout.Strip
	offset int
	settle *debounce.Debouncer
	bar    progress.Model
}

// New creates a carousel over cards. Card ids must be unique.
func New(title string, cards []Card, opts Options) (*Model, error) {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	reg, err := tracker.NewRegistry(ids...)
	if err != nil {
		return nil, fmt.Errorf("carousel %q: %w", title, err)
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = defaultCardWidth
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	} else if opts.Gap == 0 {
		opts.Gap = defaultGap
	}

	m := &Model{
		title: title,
		cards: cards,
		opts:  opts,
		reg:   reg,
		geo:   tracker.NewStaticGeometry(),
		bar: progress.New(
			progress.WithSolidFill(string(styles.T().Primary)),
			progress.WithoutPercentage(),
		),
	}
	m.trk = tracker.New(reg, m.geo, tracker.Options{
		Strategy:   tracker.NearestCenter,
		Axis:       tracker.Horizontal,
		Clock:      opts.Clock,
		Debounce:   opts.Debounce,
		MountDelay: opts.MountDelay,
	})
	m.settle = debounce.New(opts.Clock, m.settleDelay(), m.snap)
	return m, nil
}

// settleDelay waits one debounce period past the tracker's own so the snap
// sees the recomputed index.
func (m *Model) settleDelay() time.Duration {
	d := m.opts.Debounce
	if d <= 0 {
		d = tracker.DefaultDebounce
	}
	return 2 * d
}

// Mount schedules the tracker's initial correction.
func (m *Model) Mount() {
	m.trk.Mount()
}

// SetSize lays out the strip for the given width and keeps the offset valid.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.strip = layout.Strip{
		ViewWidth: width,
		CardWidth: layout.CardWidthFor(width, m.opts.CardWidth),
		Gap:       m.opts.Gap,
		Count:     len(m.cards),
	}
	for i, c := range m.cards {
		m.geo.Set(c.ID, tracker.Rect{
			X: float64(m.strip.CardLeft(i)),
			W: float64(m.strip.CardWidth),
			H: 1,
		})
	}
	m.offset = layout.ClampOffset(m.offset, m.strip.Width(), width)
	m.updateContainer()
}

func (m *Model) updateContainer() {
	if m.Width() <= 0 {
		m.geo.ClearContainer()
		return
	}
	m.geo.SetContainer(tracker.Rect{X: float64(m.offset), W: float64(m.Width()), H: 1})
}

// ScrollBy moves the row horizontally. It returns true if the offset
// changed; the tracker recomputes once scrolling has been quiet.
func (m *Model) ScrollBy(delta int) bool {
	return m.ScrollTo(m.offset + delta)
}

// ScrollTo moves the row to an absolute offset.
func (m *Model) ScrollTo(pos int) bool {
	next := layout.ClampOffset(pos, m.strip.Width(), m.Width())
	if next == m.offset {
		return false
	}
	m.offset = next
	m.updateContainer()
	m.trk.HandleScroll()
	if m.opts.Snap {
		m.settle.Trigger()
	}
	return true
}

// ScrollCards moves the row by whole cards, the h/l key step.
func (m *Model) ScrollCards(n int) bool {
	return m.ScrollBy(n * (m.strip.CardWidth + m.strip.Gap))
}

// snap centers the current card once the tracker has settled. It re-arms
// while the tracker still has a recomputation pending.
func (m *Model) snap() {
	if m.trk.Closed() {
		return
	}
	if m.trk.ScrollPending() {
		m.settle.Trigger()
		return
	}
	target := m.strip.ScrollToCenter(m.trk.Current())
	if target == m.offset {
		return
	}
	m.offset = target
	m.updateContainer()
}

// Current returns the index of the current card.
func (m *Model) Current() int { return m.trk.Current() }

// Tracker exposes the row's tracker.
func (m *Model) Tracker() *tracker.Tracker { return m.trk }

// Offset returns the horizontal scroll offset.
func (m *Model) Offset() int { return m.offset }

// Strip returns the current strip layout.
func (m *Model) Strip() layout.Strip { return m.strip }

// Len returns the number of cards.
func (m *Model) Len() int { return len(m.cards) }

// Close cancels the pending snap and tears the tracker down.
func (m *Model) Close() {
	m.settle.Cancel()
	m.trk.Close()
}

// View renders the heading, the visible window of the strip, the progress
// bar and the dots.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	heading := s.Heading.Render(m.title)
	if m.IsFocused() {
		heading += s.Subtle.Render("  h/l scroll · tab next row")
	}
	lines := []string{heading, ""}

	if len(m.cards) == 0 {
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.renderWindow()...)
	lines = append(lines, "", render.Center(m.renderProgress(width), width))
	lines = append(lines, render.Center(m.renderDots(), width))
	return strings.Join(lines, "\n")
}

func (m *Model) renderWindow() []string {
	current := m.trk.Current()
	rendered := make([]string, 0, 2*len(m.cards)+1)
	pad := strings.Repeat(" ", m.strip.SidePadding())
	rendered = append(rendered, pad)
	for i, c := range m.cards {
		if i > 0 && m.strip.Gap > 0 {
			rendered = append(rendered, strings.Repeat(" ", m.strip.Gap))
		}
		rendered = append(rendered, m.renderCard(c, i == current))
	}
	rendered = append(rendered, pad)
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	out := strings.Split(row, "\n")
	for i, line := range out {
		out[i] = render.PadStyled(ansi.Cut(line, m.offset, m.offset+m.Width()), m.Width())
	}
	return out
}

func (m *Model) renderCard(c Card, active bool) string {
	s := styles.T().S()
	inner := max(m.strip.CardWidth-4, 1)

	header := c.Header
	if c.Icon != "" {
		header = c.Icon + " " + header
	}
	lines := []string{
		s.Muted.Render(render.Truncate(header, inner)),
		styles.Emphasis(render.Truncate(c.Title, inner), active),
		s.Base.Render(render.Truncate(c.Subtitle, inner)),
	}
	body := render.Wrap(c.Body, inner)
	for i := range cardBodyLines {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, s.Subtle.Render(line))
	}
	return styles.CardStyle(active, m.strip.CardWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderProgress(width int) string {
	m.bar.Width = max(min(width-4, barMaxWidth), 1)
	return m.bar.ViewAs(tracker.Progress(m.trk.Current(), len(m.cards)))
}

func (m *Model) renderDots() string {
	s := styles.T().S()
	current := m.trk.Current()
	dots := make([]string, len(m.cards))
	for i := range m.cards {
		if i <= current {
			dots[i] = s.Active.Render("●")
		} else {
			dots[i] = s.Subtle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
