// Package queue drives a playlist.Queue against a playback engine.
package queue

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/observer"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/playlist"
)

// ErrIndexOutOfRange is returned when an index does not address a queued track.
var ErrIndexOutOfRange = errors.New("queue index out of range")

const historySize = 50

// Engine is the part of playback.Engine the coordinator drives.
type Engine interface {
	Play(track catalog.Track)
	Stop()
	Subscribe(fn func(playback.Event)) func()
}

// Verify playback.Engine satisfies Engine at compile time.
var _ Engine = (*playback.Engine)(nil)

// DelayFunc schedules fn to run later on the loop goroutine and returns a
// function that cancels it.
type DelayFunc func(fn func()) (cancel func())

// Coordinator owns the queue and turns navigation intents into engine
// requests. Like the engine it must only be used from the loop goroutine.
type Coordinator struct {
	engine  Engine
	logger  zerolog.Logger
	queue   *playlist.Queue
	history *playlist.History

	// active is the ID of the track the coordinator last asked the engine
	// to play; engine events for other tracks are not ours to react to.
	active   string
	failures int

	delay     DelayFunc
	pending   func()
	pendingID uint64

	listeners   observer.Listeners[Change]
	unsubscribe func()
}

// New creates a coordinator with an empty queue and subscribes it to engine.
func New(engine Engine, logger zerolog.Logger) *Coordinator {
	c := &Coordinator{
		engine:  engine,
		logger:  logger.With().Str("component", "queue").Logger(),
		queue:   playlist.NewQueue(),
		history: playlist.NewHistory(historySize),
	}
	c.history.Reset(nil)
	c.unsubscribe = engine.Subscribe(c.onEngineEvent)
	return c
}

// Close detaches the coordinator from the engine and drops its listeners.
func (c *Coordinator) Close() {
	c.cancelPending()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.listeners.Clear()
}

// Subscribe registers fn for queue changes.
func (c *Coordinator) Subscribe(fn func(Change)) func() {
	return c.listeners.Subscribe(fn)
}

// SetAdvanceDelay installs a hook that postpones automatic advancement after
// a track ends. A nil hook advances immediately.
func (c *Coordinator) SetAdvanceDelay(d DelayFunc) {
	c.delay = d
}

// Snapshot returns the current queue state.
func (c *Coordinator) Snapshot() Change {
	return c.snapshot(ChangeSnapshot)
}

// Current returns the track under the cursor.
func (c *Coordinator) Current() (catalog.Track, bool) {
	return c.queue.Current()
}

// CurrentIndex returns the cursor position, or -1 when the queue is empty.
func (c *Coordinator) CurrentIndex() int {
	return c.queue.CurrentIndex()
}

// Len returns the number of queued tracks.
func (c *Coordinator) Len() int {
	return c.queue.Len()
}

// Loop reports the loop flag.
func (c *Coordinator) Loop() bool {
	return c.queue.Loop()
}

// Tracks returns a copy of the queued tracks.
func (c *Coordinator) Tracks() []catalog.Track {
	return c.queue.Tracks()
}

// SetQueue replaces the queue and places the cursor on start (clamped).
// It does not start playback.
func (c *Coordinator) SetQueue(tracks []catalog.Track, start int) {
	c.cancelPending()
	c.queue.Replace(tracks, start)
	c.history.Reset(c.queue.Tracks())
	c.failures = 0
	c.release()
	c.emit(ChangeReplaced)
}

// Restore loads a persisted queue without starting playback and without
// reporting it as a replacement.
func (c *Coordinator) Restore(tracks []catalog.Track, index int, loop bool) {
	c.cancelPending()
	c.queue.Replace(tracks, index)
	c.queue.SetLoop(loop)
	c.history.Reset(c.queue.Tracks())
	c.failures = 0
	c.release()
	c.emit(ChangeRestored)
}

// release stops following the playing session unless the cursor sits on
// it. A released session plays out but never advances the queue.
func (c *Coordinator) release() {
	if cur, ok := c.queue.Current(); !ok || cur.ID != c.active {
		c.active = ""
	}
}

// PlayCurrent plays the track under the cursor. It is a no-op when the
// queue is empty.
func (c *Coordinator) PlayCurrent() {
	c.cancelPending()
	track, ok := c.queue.Current()
	if !ok {
		return
	}
	c.play(track)
}

// Next advances to the following track and plays it. At the end of a
// non-looping queue the engine is stopped and the change is reported as
// exhausted.
func (c *Coordinator) Next() {
	c.cancelPending()
	idx, ok := c.queue.NextIndex()
	if !ok {
		c.exhaust()
		return
	}
	c.queue.MoveTo(idx)
	c.emit(ChangeCursor)
	c.PlayCurrent()
}

// Prev moves to the previous track and plays it. At the start of a
// non-looping queue nothing happens.
func (c *Coordinator) Prev() {
	idx, ok := c.queue.PrevIndex()
	if !ok {
		return
	}
	c.cancelPending()
	c.queue.MoveTo(idx)
	c.emit(ChangeCursor)
	c.PlayCurrent()
}

// ToggleLoop flips the loop flag and returns its new value.
func (c *Coordinator) ToggleLoop() bool {
	c.SetLoop(!c.queue.Loop())
	return c.queue.Loop()
}

// SetLoop sets the loop flag. Playback is unaffected.
func (c *Coordinator) SetLoop(loop bool) {
	if c.queue.Loop() == loop {
		return
	}
	c.queue.SetLoop(loop)
	c.emit(ChangeLoop)
}

// SelectIndex moves the cursor to i and plays that track.
func (c *Coordinator) SelectIndex(i int) error {
	if !c.queue.MoveTo(i) {
		return ErrIndexOutOfRange
	}
	c.emit(ChangeCursor)
	c.PlayCurrent()
	return nil
}

// Enqueue appends track unless its ID is already queued.
func (c *Coordinator) Enqueue(track catalog.Track) bool {
	if !c.queue.Append(track) {
		return false
	}
	c.history.Push(c.queue.Tracks())
	c.emit(ChangeEdited)
	return true
}

// Reorder moves the track at from to position to. The cursor keeps
// pointing at the same track.
func (c *Coordinator) Reorder(from, to int) error {
	if !c.queue.Move(from, to) {
		return ErrIndexOutOfRange
	}
	if from != to {
		c.history.Push(c.queue.Tracks())
		c.emit(ChangeEdited)
	}
	return nil
}

// Remove drops the track at i. Removing the track being played stops it.
func (c *Coordinator) Remove(i int) error {
	track, ok := c.queue.Track(i)
	if !ok {
		return ErrIndexOutOfRange
	}
	c.queue.RemoveAt(i)
	if track.ID == c.active {
		c.stop()
	}
	c.history.Push(c.queue.Tracks())
	c.emit(ChangeEdited)
	return nil
}

// Retain drops every queued track for which keep returns false and reports
// how many were removed.
func (c *Coordinator) Retain(keep func(catalog.Track) bool) int {
	removed := 0
	for i := c.queue.Len() - 1; i >= 0; i-- {
		track, _ := c.queue.Track(i)
		if keep(track) {
			continue
		}
		c.queue.RemoveAt(i)
		if track.ID == c.active {
			c.stop()
		}
		removed++
	}
	if removed > 0 {
		c.history.Reset(c.queue.Tracks())
		c.emit(ChangeEdited)
	}
	return removed
}

// Undo reverts the last edit of the track list.
func (c *Coordinator) Undo() bool {
	tracks, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.applyHistory(tracks)
	return true
}

// Redo reapplies the last undone edit.
func (c *Coordinator) Redo() bool {
	tracks, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.applyHistory(tracks)
	return true
}

func (c *Coordinator) applyHistory(tracks []catalog.Track) {
	start := c.queue.CurrentIndex()
	if cur, ok := c.queue.Current(); ok {
		for i := range tracks {
			if tracks[i].ID == cur.ID {
				start = i
				break
			}
		}
	}
	c.queue.Replace(tracks, start)
	if c.active != "" && c.queue.IndexOf(c.active) < 0 {
		c.stop()
	}
	c.emit(ChangeEdited)
}

// Stop stops playback. The queue and cursor are kept and nothing advances.
func (c *Coordinator) Stop() {
	c.cancelPending()
	c.stop()
}

func (c *Coordinator) stop() {
	c.active = ""
	c.engine.Stop()
}

func (c *Coordinator) play(track catalog.Track) {
	// Set before calling the engine: the Stopped event for the previous
	// session is delivered synchronously from within Play.
	c.active = track.ID
	c.logger.Debug().Str("track", track.ID).Int("index", c.queue.CurrentIndex()).Msg("play")
	c.engine.Play(track)
}

func (c *Coordinator) exhaust() {
	c.stop()
	c.failures = 0
	c.logger.Debug().Msg("queue exhausted")
	c.emit(ChangeExhausted)
}

func (c *Coordinator) onEngineEvent(ev playback.Event) {
	if ev.Track.ID == "" || ev.Track.ID != c.active {
		return
	}
	if cur, ok := c.queue.Current(); !ok || cur.ID != ev.Track.ID {
		return
	}
	switch ev.Kind {
	case playback.EventStarted:
		c.failures = 0
	case playback.EventStopped:
		// Someone other than the coordinator replaced or stopped the session.
		c.active = ""
	case playback.EventEnded:
		c.active = ""
		c.failures = 0
		c.advance()
	case playback.EventFailed:
		c.active = ""
		c.failures++
		if c.failures >= c.queue.Len() {
			c.logger.Warn().Int("failures", c.failures).Msg("every queued track failed; stopping")
			c.exhaust()
			return
		}
		c.advance()
	case playback.EventPaused, playback.EventResumed:
	}
}

func (c *Coordinator) advance() {
	if c.delay == nil {
		c.Next()
		return
	}
	if _, ok := c.queue.NextIndex(); !ok {
		c.exhaust()
		return
	}
	c.cancelPending()
	id := c.pendingID
	cancel := c.delay(func() {
		if id != c.pendingID {
			return
		}
		c.pendingID++
		c.pending = nil
		c.Next()
	})
	if id == c.pendingID {
		c.pending = cancel
	}
}

func (c *Coordinator) cancelPending() {
	c.pendingID++
	if c.pending == nil {
		return
	}
	cancel := c.pending
	c.pending = nil
	cancel()
}

func (c *Coordinator) emit(kind ChangeKind) {
	c.listeners.Emit(c.snapshot(kind))
}

func (c *Coordinator) snapshot(kind ChangeKind) Change {
	return Change{
		Kind:      kind,
		Tracks:    c.queue.Tracks(),
		Index:     c.queue.CurrentIndex(),
		Loop:      c.queue.Loop(),
		Exhausted: kind == ChangeExhausted,
	}
}
