// internal/playback/engine.go
package playback

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/observer"
	"github.com/llehouerou/mcsounds/internal/player"
)

// Engine owns at most one media session at a time.
//
// Engine is not safe for concurrent use: every method, and every media
// callback, must run on the same goroutine (see package loop).
type Engine struct {
	media  player.Media
	logger zerolog.Logger

	state  State
	track  catalog.Track
	handle player.Handle
	cancel context.CancelFunc

	// gen identifies the current session; callbacks carrying an older
	// generation belong to a torn-down session and are ignored.
	gen uint64

	listeners observer.Listeners[Event]
}

// New creates an idle engine.
func New(media player.Media, logger zerolog.Logger) *Engine {
	return &Engine{
		media:  media,
		logger: logger.With().Str("component", "playback").Logger(),
	}
}

// Subscribe registers fn for lifecycle events.
func (e *Engine) Subscribe(fn func(Event)) func() {
	return e.listeners.Subscribe(fn)
}

// State returns the current session state.
func (e *Engine) State() State {
	return e.state
}

// Current returns the track of the active session, if any.
func (e *Engine) Current() (catalog.Track, bool) {
	if e.state == StateIdle {
		return catalog.Track{}, false
	}
	return e.track, true
}

// IsPlaying reports whether the current session is audible.
func (e *Engine) IsPlaying() bool {
	return e.state == StatePlaying
}

// Position returns the elapsed position of the current session.
func (e *Engine) Position() time.Duration {
	if e.handle == nil {
		return 0
	}
	return e.handle.Position()
}

// Duration returns the length of the current session's media.
func (e *Engine) Duration() time.Duration {
	if e.handle == nil {
		return 0
	}
	return e.handle.Duration()
}

// Play replaces any current session with a new one for track. The previous
// session is fully released, and its EventStopped emitted, before the new
// media is requested. EventStarted follows once the media is ready.
func (e *Engine) Play(track catalog.Track) {
	// A Stopped listener may itself start playback; keep tearing down until
	// nothing is left so only this request survives.
	for e.state != StateIdle {
		e.teardown(ReasonReplaced)
	}

	e.gen++
	gen := e.gen
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.state = StateLoading
	e.track = track

	e.logger.Debug().Str("track", track.ID).Uint64("session", gen).Msg("loading")
	e.media.Load(ctx, track.Path, func(h player.Handle, err error) {
		e.loaded(gen, track, h, err)
	})
}

func (e *Engine) loaded(gen uint64, track catalog.Track, h player.Handle, err error) {
	if gen != e.gen || e.state != StateLoading {
		if h != nil {
			_ = h.Close()
		}
		e.logger.Debug().Str("track", track.ID).Uint64("session", gen).Msg("discarding stale load")
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	if err != nil {
		e.release()
		e.logger.Warn().Err(err).Str("track", track.ID).Msg("failed to load sound")
		e.listeners.Emit(Event{Kind: EventFailed, Track: track, Err: err})
		return
	}

	e.handle = h
	e.state = StatePlaying
	h.Start(func(err error) { e.finished(gen, err) })
	e.logger.Debug().Str("track", track.ID).Uint64("session", gen).Msg("started")
	e.listeners.Emit(Event{Kind: EventStarted, Track: track})
}

func (e *Engine) finished(gen uint64, err error) {
	if gen != e.gen || (e.state != StatePlaying && e.state != StatePaused) {
		return
	}
	track := e.track
	e.release()

	if err != nil {
		e.logger.Warn().Err(err).Str("track", track.ID).Msg("playback error")
		e.listeners.Emit(Event{Kind: EventFailed, Track: track, Err: err})
		return
	}
	e.logger.Debug().Str("track", track.ID).Msg("ended")
	e.listeners.Emit(Event{Kind: EventEnded, Track: track})
}

// Pause pauses a playing session. It is a no-op in any other state.
func (e *Engine) Pause() {
	if e.state != StatePlaying {
		return
	}
	e.handle.Pause()
	e.state = StatePaused
	e.listeners.Emit(Event{Kind: EventPaused, Track: e.track})
}

// Resume resumes a paused session. It is a no-op in any other state.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.handle.Resume()
	e.state = StatePlaying
	e.listeners.Emit(Event{Kind: EventResumed, Track: e.track})
}

// Toggle pauses a playing session or resumes a paused one.
func (e *Engine) Toggle() {
	switch e.state {
	case StatePlaying:
		e.Pause()
	case StatePaused:
		e.Resume()
	case StateIdle, StateLoading:
		// Nothing to toggle
	}
}

// Stop ends the current session. Calling Stop while idle does nothing.
func (e *Engine) Stop() {
	if e.state == StateIdle {
		return
	}
	e.teardown(ReasonUser)
}

// Rewind moves the current session back to its start without changing
// whether it is playing or paused.
func (e *Engine) Rewind() {
	if e.handle == nil {
		return
	}
	if err := e.handle.Rewind(); err != nil {
		e.logger.Warn().Err(err).Str("track", e.track.ID).Msg("rewind failed")
	}
}

// Close stops playback and drops every subscriber.
func (e *Engine) Close() {
	e.Stop()
	e.listeners.Clear()
}

func (e *Engine) teardown(reason StopReason) {
	track := e.track
	e.release()
	e.listeners.Emit(Event{Kind: EventStopped, Track: track, Reason: reason})
}

// release drops the session without notifying anyone.
func (e *Engine) release() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.handle != nil {
		e.handle.Pause()
		if err := e.handle.Close(); err != nil {
			e.logger.Debug().Err(err).Str("track", e.track.ID).Msg("close media")
		}
		e.handle = nil
	}
	e.gen++
	e.state = StateIdle
	e.track = catalog.Track{}
}
