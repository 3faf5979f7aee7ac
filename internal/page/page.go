// Package page is the root bubbletea model: a single vertically scrolling
// portfolio page made of stacked sections, with two horizontally scrolling
// card rows and a navbar.
package page

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/tracker"
	"github.com/llehouerou/folio/internal/ui/carousel"
	"github.com/llehouerou/folio/internal/ui/footer"
	"github.com/llehouerou/folio/internal/ui/gallery"
	"github.com/llehouerou/folio/internal/ui/hero"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/scroll"
	"github.com/llehouerou/folio/internal/ui/showcase"
	"github.com/llehouerou/folio/internal/ui/skills"
	"github.com/llehouerou/folio/internal/ui/timeline"
)

// Focus is the horizontally scrollable row receiving h/l.
type Focus int

const (
	FocusNone Focus = iota
	FocusEducation
	FocusGraphics
)

func (f Focus) String() string {
	switch f {
	case FocusEducation:
		return "education"
	case FocusGraphics:
		return "graphics"
	}
	return ""
}

func parseFocus(s string) Focus {
	switch s {
	case "education":
		return FocusEducation
	case "graphics":
		return FocusGraphics
	}
	return FocusNone
}

// PopupKind identifies the open popup.
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupHelp
	PopupMenu
)

// Deps are the runtime services the page uses.
type Deps struct {
	// Clock drives the trackers' timers. In a running program it is a
	// clock.Loop bound to the program; tests pass a clock.Fake.
	Clock clock.Clock
	// State persists the navigation. Nil disables persistence.
	State state.Interface
	// StateErr is shown in the notification line when the state database
	// could not be opened.
	StateErr error
	// Now is used for the footer's "content updated" line.
	Now func() time.Time
}

// Model is the root application model.
type Model struct {
	portfolio *content.Portfolio
	deps      Deps

	hero         *hero.Model
	timeline     *timeline.Model
	education    *carousel.Model
	achievements *showcase.Model
	projects     *showcase.Model
	featured     *showcase.Model
	skills       *skills.Model
	gallery      *gallery.Model
	footer       *footer.Model

	layout   *Layout
	geo      *Geometry
	observer *tracker.Observer

	offset   scroll.Offset
	focus    Focus
	popup    popup.Popup
	popupFor PopupKind
	resolver *keymap.Resolver

	notification string
	width        int
	height       int
	closed       bool
}

// New builds the page for p. Saved navigation is restored from deps.State.
func New(p *content.Portfolio, cfg *config.Config, deps Deps) (Model, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	tracking := cfg.GetTrackingConfig()
	heroCfg := cfg.GetHeroConfig()
	galleryCfg := cfg.GetGalleryConfig()

	m := Model{
		portfolio: p,
		deps:      deps,
		hero:      hero.New(p, heroCfg.Rotate(), heroCfg.Fade()),
		resolver:  keymap.NewResolver(keymap.ForContexts("global", "page", "row")),
	}

	var err error
	if m.timeline, err = timeline.New(timeline.Heading{}, p.Experience, tracking.Threshold); err != nil {
		return Model{}, err
	}
	if m.education, err = carousel.New("Education", educationCards(p.Education), carousel.Options{
		Clock:      deps.Clock,
		Debounce:   tracking.Debounce(),
		MountDelay: tracking.MountDelay(),
		Snap:       tracking.SnapEnabled(),
	}); err != nil {
		return Model{}, err
	}
	if m.gallery, err = gallery.New(p.Graphics, gallery.Options{
		Clock:      deps.Clock,
		Debounce:   tracking.Debounce(),
		MountDelay: tracking.MountDelay(),
		Frame:      galleryCfg.Frame(),
		Autoplay:   galleryCfg.AutoplayEnabled(),
	}); err != nil {
		return Model{}, err
	}
	m.achievements = showcase.Achievements(p.Achievements)
	m.projects = showcase.Projects(p.Projects)
	m.featured = showcase.Featured(p.Featured)
	m.skills = skills.New(p)
	m.footer = footer.New(p, deps.Now)

	m.geo = NewGeometry()
	m.observer = tracker.NewObserver(m.geo, tracking.Threshold)
	m.observer.Observe(m.timeline.Registry())
	m.timeline.Observe(m.observer)

	m.layout = newLayout([]Block{
		{Anchor: "hero", Section: m.hero},
		{Anchor: "experience", Section: m.timeline},
		{Anchor: "education", Section: m.education},
		{Anchor: "achievements", Section: m.achievements},
		{Anchor: "projects", Section: m.projects},
		{Anchor: "featured", Section: m.featured},
		{Anchor: "skills", Section: m.skills},
		{Anchor: "graphics", Section: m.gallery},
		{Anchor: "footer", Section: m.footer},
	})

	if deps.StateErr != nil {
		m.notification = errmsg.Format(errmsg.OpStateOpen, deps.StateErr)
	}
	m.restoreNavigation()
	return m, nil
}

func educationCards(schools []content.School) []carousel.Card {
	cards := make([]carousel.Card, len(schools))
	for i, s := range schools {
		cards[i] = carousel.Card{
			ID:       s.ID,
			Icon:     icons.ForEducation(s.Kind),
			Header:   s.Period,
			Title:    s.Degree,
			Subtitle: s.Institution,
			Body:     s.Description,
		}
	}
	return cards
}

// Init implements tea.Model. It sets the window title, starts the hero
// rotation and the gallery, and arms the education row's initial
// correction.
func (m Model) Init() tea.Cmd {
	m.education.Mount()
	return tea.Batch(
		tea.SetWindowTitle(m.portfolio.Owner.Name),
		m.hero.Init(),
		m.gallery.Init(),
	)
}

// Close tears down every tracker, the observer and the timers. It is safe
// to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.hero.Stop()
	m.education.Close()
	m.gallery.Close()
	m.timeline.Close()
	m.observer.Disconnect()
}

// Closed reports whether Close has run.
func (m Model) Closed() bool { return m.closed }

// Offset returns the page scroll offset in lines.
func (m Model) Offset() int { return m.offset.Pos() }

// Focused returns the focused row.
func (m Model) Focused() Focus { return m.focus }

// ActivePopup returns the open popup kind.
func (m Model) ActivePopup() PopupKind { return m.popupFor }

// Notification returns the text of the notification line.
func (m Model) Notification() string { return m.notification }

// Layout returns the current section layout.
func (m Model) Layout() *Layout { return m.layout }

// Timeline, Education and Gallery expose the tracked sections.
func (m Model) Timeline() *timeline.Model { return m.timeline }
func (m Model) Education() *carousel.Model { return m.education }
func (m Model) Gallery() *gallery.Model    { return m.gallery }

// String implements fmt.Stringer for debug logging.
func (m Model) String() string {
	return fmt.Sprintf("page{offset=%d focus=%s experience=%d education=%d graphics=%d}",
		m.offset.Pos(), m.focus, m.timeline.Current(), m.education.Current(), m.gallery.Current())
}
