package queue

import (
	"github.com/samber/lo"

	"github.com/llehouerou/mcsounds/internal/catalog"
)

// ChangeKind tells what caused a queue change notification.
type ChangeKind int

const (
	// ChangeSnapshot is only used for Snapshot results.
	ChangeSnapshot ChangeKind = iota
	// ChangeReplaced: SetQueue installed a new track list.
	ChangeReplaced
	// ChangeRestored: a persisted queue was loaded.
	ChangeRestored
	// ChangeEdited: tracks were appended, moved or removed.
	ChangeEdited
	// ChangeCursor: the current index moved.
	ChangeCursor
	// ChangeLoop: the loop flag flipped.
	ChangeLoop
	// ChangeExhausted: Next ran past the end of a non-looping queue.
	ChangeExhausted
)

// Change is the queue state published after every mutation.
type Change struct {
	Kind   ChangeKind
	Tracks []catalog.Track
	// Index is the cursor, -1 when Tracks is empty.
	Index int
	Loop  bool
	// Exhausted is set when playback stopped because the queue ran out.
	Exhausted bool
}

// Current returns the track under the cursor.
func (c Change) Current() (catalog.Track, bool) {
	if c.Index < 0 || c.Index >= len(c.Tracks) {
		return catalog.Track{}, false
	}
	return c.Tracks[c.Index], true
}

// IDs returns the queued track IDs in order.
func (c Change) IDs() []string {
	return lo.Map(c.Tracks, func(t catalog.Track, _ int) string { return t.ID })
}
