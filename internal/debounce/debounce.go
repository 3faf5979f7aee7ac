// Package debounce provides a trailing-edge debouncer with explicit
// arm, cancel and fire steps on top of a clock.Clock.
package debounce

import (
	"sync"
	"time"

	"github.com/llehouerou/folio/internal/clock"
)

// Debouncer runs fn once after a burst of Trigger calls has been quiet for
// the configured delay. Each Trigger restarts the quiet period.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64
	fires int
}

// New creates a debouncer. A nil clock uses real timers.
func New(c clock.Clock, delay time.Duration, fn func()) *Debouncer {
	if c == nil {
		c = clock.Real{}
	}
	return &Debouncer{clock: c, delay: delay, fn: fn}
}

// Trigger arms the debouncer, or re-arms it if a call is already pending.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops a pending call. It returns true if one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Flush runs a pending call immediately. It returns true if one was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.fires++
	d.mu.Unlock()

	d.fn()
	return true
}

// Pending reports whether a call is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Fires returns how many times fn has run.
func (d *Debouncer) Fires() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fires
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A stale expiry from a timer that lost the race with Stop.
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.fires++
	d.mu.Unlock()

	d.fn()
}

// After schedules fn once after delay. The returned timer cancels it.
func After(c clock.Clock, delay time.Duration, fn func()) clock.Timer {
	if c == nil {
		c = clock.Real{}
	}
	return c.AfterFunc(delay, fn)
}
