package playlist

import "github.com/llehouerou/mcsounds/internal/catalog"

// Queue is an ordered list of tracks with a cursor and a loop flag.
//
// The cursor is -1 exactly when the queue is empty; otherwise it always
// points at a valid track. Queue never plays anything itself.
type Queue struct {
	tracks       trackList
	currentIndex int
	loop         bool
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{
		currentIndex: -1,
	}
}

// Current returns the track under the cursor.
func (q *Queue) Current() (catalog.Track, bool) {
	return q.tracks.at(q.currentIndex)
}

// Track returns the track at index.
func (q *Queue) Track(index int) (catalog.Track, bool) {
	return q.tracks.at(index)
}

// CurrentIndex returns the cursor position (-1 if empty).
func (q *Queue) CurrentIndex() int {
	return q.currentIndex
}

// Loop reports whether navigation wraps around the ends.
func (q *Queue) Loop() bool {
	return q.loop
}

// SetLoop sets the loop flag.
func (q *Queue) SetLoop(loop bool) {
	q.loop = loop
}

// NextIndex returns the index after the cursor, wrapping when looping.
// Returns false when the queue is exhausted.
func (q *Queue) NextIndex() (int, bool) {
	n := len(q.tracks)
	if n == 0 {
		return -1, false
	}
	if q.currentIndex < n-1 {
		return q.currentIndex + 1, true
	}
	if q.loop {
		return 0, true
	}
	return -1, false
}

// PrevIndex returns the index before the cursor, wrapping when looping.
// Returns false at the start of a non-looping queue.
func (q *Queue) PrevIndex() (int, bool) {
	n := len(q.tracks)
	if n == 0 {
		return -1, false
	}
	if q.currentIndex > 0 {
		return q.currentIndex - 1, true
	}
	if q.loop {
		return n - 1, true
	}
	return -1, false
}

// MoveTo sets the cursor. Returns false if index is out of range.
func (q *Queue) MoveTo(index int) bool {
	if index < 0 || index >= len(q.tracks) {
		return false
	}
	q.currentIndex = index
	return true
}

// Append adds track at the end unless a track with the same ID is already
// queued. The cursor moves to it only when the queue was empty.
func (q *Queue) Append(track catalog.Track) bool {
	if q.tracks.indexOf(track.ID) >= 0 {
		return false
	}
	q.tracks = append(q.tracks, track)
	if q.currentIndex < 0 {
		q.currentIndex = 0
	}
	return true
}

// Replace clears the queue and loads tracks, placing the cursor on start
// (clamped into range). The loop flag is kept.
func (q *Queue) Replace(tracks []catalog.Track, start int) {
	q.tracks = append(q.tracks[:0], tracks...)
	q.currentIndex = -1
	if len(tracks) == 0 {
		return
	}
	q.currentIndex = max(0, min(start, len(tracks)-1))
}

// Move reorders the queue. The cursor keeps pointing at the same track.
func (q *Queue) Move(from, to int) bool {
	var currentID string
	if cur, ok := q.Current(); ok {
		currentID = cur.ID
	}
	if !q.tracks.move(from, to) {
		return false
	}
	if currentID != "" {
		q.currentIndex = q.tracks.indexOf(currentID)
	}
	return true
}

// IndexOf returns the position of the track with id, or -1.
func (q *Queue) IndexOf(id string) int {
	return q.tracks.indexOf(id)
}

// RemoveAt removes the track at index. The cursor stays on the same track,
// or on the track that took its place when the current one is removed.
func (q *Queue) RemoveAt(index int) bool {
	if !q.tracks.removeAt(index) {
		return false
	}

	if q.currentIndex > index {
		q.currentIndex--
	} else if q.currentIndex >= len(q.tracks) {
		q.currentIndex = len(q.tracks) - 1
	}

	return true
}

// Clear removes all tracks.
func (q *Queue) Clear() {
	q.tracks = nil
	q.currentIndex = -1
}

// Tracks returns all tracks in the queue.
func (q *Queue) Tracks() []catalog.Track {
	return q.tracks.clone()
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}
