package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const assignDBFile = "deckpad.db"

// Assignments records which profile each controller should load, keyed by
// the identified controller name (or the raw id string for unidentified
// pads).
type Assignments struct {
	db *sql.DB
}

// OpenAssignments opens the registry at the default XDG data location.
func OpenAssignments() (*Assignments, error) {
	return OpenAssignmentsPath(filepath.Join(xdg.DataHome, appName, assignDBFile))
}

// OpenAssignmentsPath opens the registry database at path, creating it and
// the schema as needed.
func OpenAssignmentsPath(path string) (*Assignments, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Assignments{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS assignments (
			controller TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			buttons INTEGER NOT NULL DEFAULT 0,
			axes INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}

// Close closes the underlying database.
func (a *Assignments) Close() error {
	return a.db.Close()
}

// Set records that a controller should load the named profile.
func (a *Assignments) Set(controller, profileName string, buttons, axes int) error {
	_, err := a.db.Exec(`
		INSERT INTO assignments (controller, profile, buttons, axes, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(controller) DO UPDATE SET
			profile = excluded.profile,
			buttons = excluded.buttons,
			axes = excluded.axes,
			updated_at = excluded.updated_at
	`, controller, profileName, buttons, axes, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("set assignment for %q: %w", controller, err)
	}
	return nil
}

// Get returns the assigned profile name for a controller, or empty when
// none is recorded.
func (a *Assignments) Get(controller string) (string, error) {
	row := a.db.QueryRow(`SELECT profile FROM assignments WHERE controller = ?`, controller)
	var name string
	err := row.Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get assignment for %q: %w", controller, err)
	}
	return name, nil
}

// GetByCounts returns the most recently updated assignment recorded for a
// pad reporting the given button and axis counts, or empty when none
// matches. Used as a fallback key when the controller name itself has no
// assignment.
func (a *Assignments) GetByCounts(buttons, axes int) (string, error) {
	row := a.db.QueryRow(`
		SELECT profile FROM assignments
		WHERE buttons = ? AND axes = ?
		ORDER BY updated_at DESC
		LIMIT 1
	`, buttons, axes)
	var name string
	err := row.Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get assignment for %d buttons %d axes: %w", buttons, axes, err)
	}
	return name, nil
}

// Remove drops the assignment for a controller. Removing a missing
// assignment is not an error.
func (a *Assignments) Remove(controller string) error {
	_, err := a.db.Exec(`DELETE FROM assignments WHERE controller = ?`, controller)
	return err
}

// Reassign points every assignment at oldProfile to newProfile instead,
// atomically. Used when a profile is renamed or deleted.
func (a *Assignments) Reassign(oldProfile, newProfile string) error {
	return withTx(a.db, func(tx *sql.Tx) error {
		if newProfile == "" {
			_, err := tx.Exec(`DELETE FROM assignments WHERE profile = ?`, oldProfile)
			return err
		}
		_, err := tx.Exec(`
			UPDATE assignments SET profile = ?, updated_at = ? WHERE profile = ?
		`, newProfile, time.Now().Unix(), oldProfile)
		return err
	})
}

// Controllers returns the controllers with a recorded assignment, sorted
// by most recently updated.
func (a *Assignments) Controllers() ([]string, error) {
	rows, err := a.db.Query(`SELECT controller FROM assignments ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var controllers []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		controllers = append(controllers, c)
	}
	return controllers, rows.Err()
}
