// Package clock abstracts deferred callbacks so timing-dependent code can run
// against real timers, the bubbletea event loop, or a manually advanced clock.
package clock

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real runs callbacks on their own goroutine via time.AfterFunc.
type Real struct{}

// AfterFunc implements Clock.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Verify implementations at compile time.
var (
	_ Clock = Real{}
	_ Clock = (*Fake)(nil)
	_ Clock = (*Loop)(nil)
)
