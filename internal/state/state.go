// Package state persists where the reader left the page between runs.
// Only navigation is stored; tracker state is always recomputed.
package state

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/folio/internal/clock"
	dbutil "github.com/llehouerou/folio/internal/db"
	"github.com/llehouerou/folio/internal/debounce"
)

const (
	appName      = "folio"
	dbFileName   = "folio.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db    *sql.DB
	saver *debounce.Debouncer

	mu      sync.Mutex
	pending *NavigationState

	// writeMu serializes writes with Reset and Close.
	writeMu sync.Mutex
	closed  bool
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return OpenPath(dbPath, clock.Real{})
}

// OpenPath opens the database at path. Saves are debounced on c.
func OpenPath(path string, c clock.Clock) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db}
	m.saver = debounce.New(c, saveDebounce, m.flush)
	return m, nil
}

// Close writes any pending navigation state and closes the database. A
// save already running on the timer finishes before the database closes.
func (m *Manager) Close() error {
	m.saver.Flush()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.closed {
		return nil
	}
	m.writePending()
	m.closed = true
	return m.db.Close()
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation records state after a quiet period; rapid calls only
// write the last state.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	m.pending = &state
	m.mu.Unlock()

	m.saver.Trigger()
}

// Reset forgets the saved navigation.
func (m *Manager) Reset() error {
	m.saver.Cancel()
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.closed {
		return sql.ErrConnDone
	}
	_, err := m.db.Exec(`DELETE FROM navigation_state`)
	return err
}

func (m *Manager) flush() {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.writePending()
}

// writePending saves the pending state. The caller holds writeMu.
func (m *Manager) writePending() {
	if m.closed {
		return
	}
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending == nil {
		return
	}
	if err := saveNavigation(m.db, *pending); err != nil {
		log.Printf("state: saving navigation: %v", err)
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
