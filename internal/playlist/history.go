package playlist

import "github.com/llehouerou/mcsounds/internal/catalog"

// History keeps snapshots of a queue's track list for undo/redo.
type History struct {
	states  [][]catalog.Track
	current int // -1 = before any state
	maxSize int
}

// NewHistory creates a new history with the given maximum size.
func NewHistory(maxSize int) *History {
	return &History{
		states:  make([][]catalog.Track, 0, maxSize),
		current: -1,
		maxSize: maxSize,
	}
}

// Push saves a snapshot of the track list.
// Clears any redo states and trims if over limit.
func (h *History) Push(tracks []catalog.Track) {
	snapshot := make([]catalog.Track, len(tracks))
	copy(snapshot, tracks)

	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, snapshot)
	h.current = len(h.states) - 1

	if len(h.states) > h.maxSize {
		excess := len(h.states) - h.maxSize
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// Reset drops every snapshot and records tracks as the new baseline.
func (h *History) Reset(tracks []catalog.Track) {
	h.states = h.states[:0]
	h.current = -1
	h.Push(tracks)
}

// Undo returns the previous track list state.
func (h *History) Undo() ([]catalog.Track, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.snapshot(), true
}

// Redo returns the next track list state.
func (h *History) Redo() ([]catalog.Track, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.snapshot(), true
}

func (h *History) snapshot() []catalog.Track {
	s := make([]catalog.Track, len(h.states[h.current]))
	copy(s, h.states[h.current])
	return s
}

// CanUndo returns true if there is a previous state to undo to.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a next state to redo to.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}
