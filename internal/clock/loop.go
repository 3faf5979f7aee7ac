package clock

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Loop delivers timer callbacks through a bubbletea program so they run on
// the UI goroutine. Each expiry is sent as a FireMsg; the model's Update must
// call Run on it.
type Loop struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	backlog []tea.Msg
}

// NewLoop creates an unbound loop clock. Expiries that happen before Bind
// are held and delivered once a sender is bound.
func NewLoop() *Loop {
	return &Loop{}
}

// Bind sets the function used to deliver messages, usually (*tea.Program).Send.
func (l *Loop) Bind(send func(tea.Msg)) {
	l.mu.Lock()
	l.send = send
	backlog := l.backlog
	l.backlog = nil
	l.mu.Unlock()

	for _, msg := range backlog {
		send(msg)
	}
}

// AfterFunc implements Clock.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{fn: f}
	t.timer = time.AfterFunc(d, func() {
		if t.stopped.Load() {
			return
		}
		l.dispatch(FireMsg{timer: t})
	})
	return t
}

func (l *Loop) dispatch(msg tea.Msg) {
	l.mu.Lock()
	send := l.send
	if send == nil {
		l.backlog = append(l.backlog, msg)
	}
	l.mu.Unlock()

	if send != nil {
		send(msg)
	}
}

// FireMsg carries an expired timer to the event loop.
type FireMsg struct {
	timer *loopTimer
}

// Run invokes the callback unless the timer was stopped after it expired.
func (m FireMsg) Run() {
	if m.timer == nil || m.timer.stopped.Load() {
		return
	}
	if !m.timer.fired.CompareAndSwap(false, true) {
		return
	}
	m.timer.fn()
}

type loopTimer struct {
	timer   *time.Timer
	fn      func()
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	if t.fired.Load() {
		return false
	}
	return !t.stopped.Swap(true)
}
