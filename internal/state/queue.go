package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/mcsounds/internal/db"
)

// QueueState represents the saved queue state. Tracks are stored by ID and
// resolved against the catalog on restore.
type QueueState struct {
	TrackIDs     []string
	CurrentIndex int
	Loop         bool
}

func getQueue(db *sql.DB) (*QueueState, error) {
	var currentIndex int
	var loop bool
	row := db.QueryRow(`SELECT current_index, loop_enabled FROM queue_state WHERE id = 1`)
	err := row.Scan(&currentIndex, &loop)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved queue is not an error
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT track_id FROM queue_tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueueState{
		TrackIDs:     ids,
		CurrentIndex: currentIndex,
		Loop:         loop,
	}, nil
}

func saveQueue(sqlDB *sql.DB, state QueueState) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		_, err := tx.Exec(`DELETE FROM queue_tracks`)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO queue_state (id, current_index, loop_enabled)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				loop_enabled = excluded.loop_enabled
		`, state.CurrentIndex, state.Loop)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO queue_tracks (position, track_id) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range state.TrackIDs {
			if _, err := stmt.Exec(i, id); err != nil {
				return err
			}
		}
		return nil
	})
}
