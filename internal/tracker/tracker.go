package tracker

import (
	"time"

	"github.com/llehouerou/folio/internal/clock"
	"github.com/llehouerou/folio/internal/debounce"
)

// Strategy selects how the current item is chosen.
type Strategy int

const (
	// NearestCenter picks the item whose center is closest to the
	// container's center after scrolling settles.
	NearestCenter Strategy = iota
	// VisibilityRatio picks the last item reported at or above the
	// visibility threshold.
	VisibilityRatio
)

func (s Strategy) String() string {
	if s == VisibilityRatio {
		return "visibility-ratio"
	}
	return "nearest-center"
}

// Default timings.
const (
	DefaultDebounce   = 50 * time.Millisecond
	DefaultMountDelay = 100 * time.Millisecond
)

// Options configures a Tracker. Zero values take the defaults.
type Options struct {
	Strategy   Strategy
	Axis       Axis
	Clock      clock.Clock
	Debounce   time.Duration
	MountDelay time.Duration
	Threshold  float64

	// OnChange is called after the current index changes.
	OnChange func(index int)
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.Real{}
	}
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.MountDelay <= 0 {
		o.MountDelay = DefaultMountDelay
	}
	if o.Threshold <= 0 || o.Threshold > 1 {
		o.Threshold = DefaultThreshold
	}
	return o
}

// Tracker owns the current index of one sequence. It is meant to be driven
// from a single goroutine; pair it with clock.Loop in a bubbletea program so
// timer callbacks arrive on the event loop.
type Tracker struct {
	reg  *Registry
	geo  Geometry
	opts Options

	current    int
	recomputes int

	scroll       *debounce.Debouncer
	mount        clock.Timer
	unsubscribes []func()
	closed       bool
}

// New creates a tracker over reg, measuring through geo.
func New(reg *Registry, geo Geometry, opts Options) *Tracker {
	t := &Tracker{
		reg:  reg,
		geo:  geo,
		opts: opts.withDefaults(),
	}
	t.scroll = debounce.New(t.opts.Clock, t.opts.Debounce, func() { t.Recompute() })
	return t
}

// Strategy returns the selection strategy.
func (t *Tracker) Strategy() Strategy { return t.opts.Strategy }

// Threshold returns the visibility threshold in use.
func (t *Tracker) Threshold() float64 { return t.opts.Threshold }

// Len returns the number of tracked items.
func (t *Tracker) Len() int { return t.reg.Len() }

// Current returns the current index. It is 0 before any measurement.
func (t *Tracker) Current() int { return t.current }

// CurrentID returns the id of the current item, or "" for an empty sequence.
func (t *Tracker) CurrentID() string {
	it, ok := t.reg.At(t.current)
	if !ok {
		return ""
	}
	return it.ID
}

// Recomputes returns how many nearest-center passes have run.
func (t *Tracker) Recomputes() int { return t.recomputes }

// Closed reports whether Close has been called.
func (t *Tracker) Closed() bool { return t.closed }

// Mount schedules the initial correction pass for nearest-center trackers.
// Calling it again re-arms the correction.
func (t *Tracker) Mount() {
	if t.closed || t.opts.Strategy != NearestCenter {
		return
	}
	if t.mount != nil {
		t.mount.Stop()
	}
	t.mount = debounce.After(t.opts.Clock, t.opts.MountDelay, func() {
		t.mount = nil
		t.Recompute()
	})
}

// HandleScroll notes a scroll of the container. The recomputation runs once
// the scrolling has been quiet for the debounce delay.
func (t *Tracker) HandleScroll() {
	if t.closed || t.opts.Strategy != NearestCenter {
		return
	}
	t.scroll.Trigger()
}

// ScrollPending reports whether a debounced recomputation is armed.
func (t *Tracker) ScrollPending() bool {
	return t.scroll.Pending()
}

// Recompute selects the item nearest the container's center right now.
// It returns true if the current index changed.
func (t *Tracker) Recompute() bool {
	if t.closed || t.opts.Strategy != NearestCenter {
		return false
	}
	t.recomputes++
	idx, ok := Nearest(SampleAll(t.geo, t.reg, t.opts.Axis))
	if !ok {
		return false
	}
	return t.set(idx)
}

// HandleEntries applies a batch of visibility notifications in delivery
// order. The last entry at or above the threshold wins; other entries never
// change the current index.
func (t *Tracker) HandleEntries(entries []Entry) {
	if t.closed || t.opts.Strategy != VisibilityRatio {
		return
	}
	next := -1
	for _, e := range entries {
		if !e.Intersecting || e.Ratio < t.opts.Threshold {
			continue
		}
		if idx := t.reg.IndexOf(e.ID); idx >= 0 {
			next = idx
		}
	}
	if next >= 0 {
		t.set(next)
	}
}

// Observe subscribes the tracker to a visibility source until Close.
func (t *Tracker) Observe(src VisibilitySource) {
	if t.closed || src == nil {
		return
	}
	t.unsubscribes = append(t.unsubscribes, src.Subscribe(t.HandleEntries))
}

// Close cancels pending timers and subscriptions. Any handler invoked
// afterwards, including ones captured earlier, leaves the state unchanged.
func (t *Tracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.scroll.Cancel()
	if t.mount != nil {
		t.mount.Stop()
		t.mount = nil
	}
	for _, unsubscribe := range t.unsubscribes {
		unsubscribe()
	}
	t.unsubscribes = nil
}

func (t *Tracker) set(idx int) bool {
	if idx < 0 || idx >= t.reg.Len() || idx == t.current {
		return false
	}
	t.current = idx
	if t.opts.OnChange != nil {
		t.opts.OnChange(idx)
	}
	return true
}
