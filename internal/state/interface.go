// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/mcsounds/internal/favorites"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	favorites.Storage
	DB() *sql.DB
	SaveQueue(state QueueState)
	GetQueue() (*QueueState, error)
	Flush()
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
