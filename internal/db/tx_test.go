package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE visits (id INTEGER PRIMARY KEY, section TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countVisits(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	var enabled int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("pragma query failed: %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys = %d, want 1", enabled)
	}
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		for _, s := range []string{"hero", "experience"} {
			if _, err := tx.Exec(`INSERT INTO visits (section) VALUES (?)`, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if n := countVisits(t, db); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	abort := errors.New("abort")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO visits (section) VALUES (?)`, "hero"); err != nil {
			return err
		}
		return abort
	})

	if !errors.Is(err, abort) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, abort)
	}
	if n := countVisits(t, db); n != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", n)
	}
}

func TestNullStringValue(t *testing.T) {
	tests := []struct {
		name string
		in   sql.NullString
		want string
	}{
		{"valid", sql.NullString{String: "education", Valid: true}, "education"},
		{"invalid", sql.NullString{String: "education", Valid: false}, ""},
		{"valid empty", sql.NullString{String: "", Valid: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NullStringValue(tt.in); got != tt.want {
				t.Errorf("NullStringValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNullUnixTime(t *testing.T) {
	if got := NullUnixTime(sql.NullInt64{Int64: 1700000000, Valid: true}); !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("NullUnixTime(valid) = %v", got)
	}
	if got := NullUnixTime(sql.NullInt64{Int64: 1700000000}); !got.IsZero() {
		t.Errorf("NullUnixTime(invalid) = %v, want zero", got)
	}
}
