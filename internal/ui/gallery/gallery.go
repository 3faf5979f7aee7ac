// Package gallery renders the auto-scrolling graphics row. The tiles are
// laid out twice so the scroll can wrap at the end of the first copy
// without a visible jump.
package gallery

import (
	"fmt"
	"path"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/tracker"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// FrameMsg advances the auto-scroll by one column.
type FrameMsg struct{ Version int }

// Options configures the gallery.
type Options struct {
	Clock      clock.Clock
	Debounce   time.Duration
	MountDelay time.Duration
	Frame      time.Duration
	Autoplay   bool
	TileWidth  int
	Gap        int
}

const (
	defaultTileWidth = 26
	defaultGap       = 2
	defaultFrame     = 120 * time.Millisecond
)

// Model is the gallery state.
type Model struct {
	ui.Base
	title    string
	tiles    []content.Tile // the looped sequence, twice the content tiles
	partners []content.Partner
	opts     Options

	geo       *tracker.StaticGeometry
	trk       *tracker.Tracker
	tileWidth int
	offset    int
	frames    int
	version   int
}

// New creates the gallery for g.
func New(g content.Graphics, opts Options) (*Model, error) {
	tiles := g.LoopTiles()
	ids := make([]string, len(tiles))
	for i, t := range tiles {
		ids[i] = t.ID
	}
	reg, err := tracker.NewRegistry(ids...)
	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}
	if opts.TileWidth <= 0 {
		opts.TileWidth = defaultTileWidth
	}
	if opts.Gap <= 0 {
		opts.Gap = defaultGap
	}
	if opts.Frame <= 0 {
		opts.Frame = defaultFrame
	}

	m := &Model{
		title:    g.Title,
		tiles:    tiles,
		partners: g.Partners,
		opts:     opts,
		geo:      tracker.NewStaticGeometry(),
	}
	m.trk = tracker.New(reg, m.geo, tracker.Options{
		Strategy:   tracker.NearestCenter,
		Axis:       tracker.Horizontal,
		Clock:      opts.Clock,
		Debounce:   opts.Debounce,
		MountDelay: opts.MountDelay,
	})
	return m, nil
}

// Init mounts the tracker and starts the auto-scroll.
func (m *Model) Init() tea.Cmd {
	m.trk.Mount()
	return m.Start()
}

// Start (re)starts the auto-scroll. Frames from an earlier start are
// ignored.
func (m *Model) Start() tea.Cmd {
	if !m.opts.Autoplay || len(m.tiles) == 0 || m.trk.Closed() {
		return nil
	}
	m.version++
	return frameCmd(m.opts.Frame, m.version)
}

// Stop halts the auto-scroll.
func (m *Model) Stop() {
	m.version++
}

func frameCmd(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return FrameMsg{Version: version} })
}

// Update handles auto-scroll frames. The row holds still while focused so
// it can be scrolled by hand.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.Version != m.version || m.trk.Closed() {
		return nil
	}
	if !m.IsFocused() {
		m.frames++
		m.ScrollBy(1)
	}
	return frameCmd(m.opts.Frame, m.version)
}

// SetSize lays the tiles out for the given width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.tileWidth = layout.CardWidthFor(width, m.opts.TileWidth)
	for i, t := range m.tiles {
		m.geo.Set(t.ID, tracker.Rect{X: float64(m.tileLeft(i)), W: float64(m.tileWidth), H: 1})
	}
	m.offset = m.wrap(m.offset)
	m.updateContainer()
}

func (m *Model) tileLeft(i int) int {
	return i * (m.tileWidth + m.opts.Gap)
}

// loopWidth is the width of one copy of the tiles.
func (m *Model) loopWidth() int {
	return len(m.tiles) / 2 * (m.tileWidth + m.opts.Gap)
}

func (m *Model) wrap(pos int) int {
	period := m.loopWidth()
	if period <= 0 {
		return 0
	}
	pos %= period
	if pos < 0 {
		pos += period
	}
	return pos
}

func (m *Model) updateContainer() {
	if m.Width() <= 0 {
		m.geo.ClearContainer()
		return
	}
	m.geo.SetContainer(tracker.Rect{X: float64(m.offset), W: float64(m.Width()), H: 1})
}

// ScrollBy moves the row by delta columns, wrapping around the loop.
func (m *Model) ScrollBy(delta int) bool {
	next := m.wrap(m.offset + delta)
	if next == m.offset {
		return false
	}
	m.offset = next
	m.updateContainer()
	m.trk.HandleScroll()
	return true
}

// ScrollTiles moves the row by whole tiles.
func (m *Model) ScrollTiles(n int) bool {
	return m.ScrollBy(n * (m.tileWidth + m.opts.Gap))
}

// Current returns the index of the centered tile among the content tiles.
func (m *Model) Current() int {
	n := len(m.tiles) / 2
	if n == 0 {
		return 0
	}
	return m.trk.Current() % n
}

// CurrentTile returns the centered tile.
func (m *Model) CurrentTile() (content.Tile, bool) {
	if len(m.tiles) == 0 {
		return content.Tile{}, false
	}
	return m.tiles[m.Current()], true
}

// Tracker exposes the row's tracker.
func (m *Model) Tracker() *tracker.Tracker { return m.trk }

// Offset returns the horizontal scroll offset.
func (m *Model) Offset() int { return m.offset }

// Frames returns how many auto-scroll frames moved the row.
func (m *Model) Frames() int { return m.frames }

// Close stops the auto-scroll and tears the tracker down.
func (m *Model) Close() {
	m.Stop()
	m.trk.Close()
}

// View renders the heading, the visible window of the looped row, the
// current caption and the partners line.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	heading := s.Heading.Render(m.title)
	if m.IsFocused() {
		heading += s.Subtle.Render("  h/l scroll · paused")
	}
	lines := []string{heading, ""}
	if len(m.tiles) == 0 {
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.renderWindow()...)
	if tile, ok := m.CurrentTile(); ok {
		lines = append(lines, render.Center(s.Active.Render("▸ "+tile.Caption), width))
	}

	if len(m.partners) > 0 {
		names := make([]string, len(m.partners))
		for i, p := range m.partners {
			names[i] = p.Name
		}
		lines = append(lines, "", render.Center(s.Muted.Render("Worked with"), width))
		for _, l := range render.Wrap(strings.Join(names, " · "), width) {
			lines = append(lines, render.Center(s.Base.Render(l), width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderWindow() []string {
	active := m.trk.Current()
	gap := strings.Repeat(" ", m.opts.Gap)
	parts := make([]string, 0, 2*len(m.tiles))
	for i, t := range m.tiles {
		parts = append(parts, m.renderTile(t, i == active), gap)
	}
	row := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")

	// The window may reach past the second copy when the view is wider
	// than one loop; repeat the row until it covers the window.
	end := m.offset + m.Width()
	for i, line := range row {
		full := line
		for lipgloss.Width(full) < end && lipgloss.Width(line) > 0 {
			full += line
		}
		row[i] = render.PadStyled(ansi.Cut(full, m.offset, end), m.Width())
	}
	return row
}

func (m *Model) renderTile(t content.Tile, active bool) string {
	s := styles.T().S()
	inner := max(m.tileWidth-4, 1)
	name := path.Base(t.Image)
	if t.Image == "" {
		name = ""
	}
	lines := []string{
		styles.Emphasis(render.Truncate(t.Caption, inner), active),
		"",
		s.Subtle.Render(render.Truncate(name, inner)),
	}
	return styles.CardStyle(active, m.tileWidth).Render(strings.Join(lines, "\n"))
}
