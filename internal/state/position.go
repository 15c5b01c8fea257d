package state

import (
	"database/sql"
	"errors"
	"time"
)

// PositionState is the sheet's resting position, stored as a fraction of
// content height so it survives terminal resizes between runs.
type PositionState struct {
	Fraction float64
	SavedAt  time.Time
}

func getPosition(db *sql.DB) (*PositionState, error) {
	row := db.QueryRow(`
		SELECT fraction, saved_at
		FROM sheet_position WHERE id = 1
	`)

	var state PositionState
	var savedAt int64

	err := row.Scan(&state.Fraction, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SavedAt = time.Unix(savedAt, 0)

	return &state, nil
}

func savePosition(db *sql.DB, state PositionState) error {
	_, err := db.Exec(`
		INSERT INTO sheet_position (id, fraction, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fraction = excluded.fraction,
			saved_at = excluded.saved_at
	`, state.Fraction, state.SavedAt.Unix())

	return err
}
