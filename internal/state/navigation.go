package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/folio/internal/db"
)

type NavigationState struct {
	Offset    int    // page scroll offset in lines
	Section   string // anchor of the section at the top of the viewport
	Focus     string // focused row: "education", "graphics", or empty
	UpdatedAt time.Time
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT page_offset, section, focus, updated_at
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var section, focus sql.NullString
	var updatedAt sql.NullInt64

	err := row.Scan(&state.Offset, &section, &focus, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.Section = dbutil.NullStringValue(section)
	state.Focus = dbutil.NullStringValue(focus)
	state.UpdatedAt = dbutil.NullUnixTime(updatedAt)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now()
	}
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO navigation_state (id, page_offset, section, focus, updated_at)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				page_offset = excluded.page_offset,
				section = excluded.section,
				focus = excluded.focus,
				updated_at = excluded.updated_at
		`, max(state.Offset, 0), nullIfEmpty(state.Section), nullIfEmpty(state.Focus), state.UpdatedAt.Unix())
		return err
	})
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
