// Package app is the terminal user interface of mcsounds and the wiring of
// the playback components it drives.
package app

import (
	"time"

	"github.com/llehouerou/mcsounds/internal/catalog"
)

// loopMsg carries work posted to the loop. Update runs it.
type loopMsg func()

// TickMsg refreshes the position display while a sound plays.
type TickMsg time.Time

// stderrMsg is one line captured from the audio stack.
type stderrMsg string

// stderrClosedMsg ends the stderr watch.
type stderrClosedMsg struct{}

// clearStatusMsg expires a status message unless a newer one replaced it.
type clearStatusMsg struct {
	version int
}

// exportedMsg reports a finished sound copy.
type exportedMsg struct {
	track catalog.Track
	path  string
	err   error
}
