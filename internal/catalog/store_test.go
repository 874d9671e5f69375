package catalog

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestMapSQLiteError(t *testing.T) {
	if got := mapSQLiteError(nil); got != nil {
		t.Errorf("mapSQLiteError(nil) = %v, want nil", got)
	}
	if got := mapSQLiteError(sql.ErrNoRows); !errors.Is(got, ErrNotFound) {
		t.Errorf("mapSQLiteError(ErrNoRows) = %v, want ErrNotFound", got)
	}
	other := errors.New("disk I/O error")
	if got := mapSQLiteError(other); got != other {
		t.Errorf("mapSQLiteError(other) = %v, want passthrough", got)
	}
}

func TestMapSQLiteError_CheckConstraint(t *testing.T) {
	db := setupTestDB(t)

	// Bypass the Go-side validation so the driver raises the CHECK failure.
	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO movies (title, description, poster, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		"", "no title", "https://img.example.com/p.jpg", now, now,
	)
	if err == nil {
		t.Fatal("insert with empty title should violate the CHECK constraint")
	}
	if got := mapSQLiteError(err); !errors.Is(got, ErrConstraint) {
		t.Errorf("mapSQLiteError(%v) = %v, want ErrConstraint", err, got)
	}
}
