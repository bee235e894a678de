// Package state persists application state in SQLite: a key-value table
// (favorites live there) and the last queue.
package state

import (
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	dbutil "github.com/llehouerou/mcsounds/internal/db"
)

const (
	appName      = "mcsounds"
	dbFileName   = "mcsounds.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	logger    zerolog.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *QueueState
}

// Open opens the state database at path. An empty path selects the default
// location under the XDG data directory.
func Open(path string, logger zerolog.Logger) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := New(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

// New wraps an open database, creating the schema if needed.
func New(db *sql.DB, logger zerolog.Logger) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, err
	}
	return &Manager{
		db:     db,
		logger: logger.With().Str("component", "state").Logger(),
	}, nil
}

// DefaultPath returns the default database location.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func (m *Manager) Close() error {
	m.Flush()
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetQueue returns the saved queue, or nil if none was saved.
func (m *Manager) GetQueue() (*QueueState, error) {
	return getQueue(m.db)
}

// SaveQueue schedules state to be written. Calls within the debounce window
// collapse into one write of the latest state.
func (m *Manager) SaveQueue(state QueueState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, m.Flush)
}

// Flush writes any pending queue state immediately.
func (m *Manager) Flush() {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return
	}
	if err := saveQueue(m.db, *pending); err != nil {
		m.logger.Warn().Err(err).Msg("failed to save queue")
	}
}
