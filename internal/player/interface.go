// internal/player/interface.go
package player

import (
	"context"
	"time"
)

// Poster delivers fn onto the goroutine that owns playback state.
// Implementations must not block the caller for long.
type Poster interface {
	Post(fn func())
}

// PosterFunc adapts a function to Poster.
type PosterFunc func(fn func())

// Post calls f(fn).
func (f PosterFunc) Post(fn func()) { f(fn) }

// Media acquires playable handles. It is the narrow contract the playback
// engine depends on.
type Media interface {
	// Load opens and decodes the sound at path. done is called exactly once,
	// on the owner's goroutine, with either a ready handle or an error.
	// A cancelled ctx may still complete with a handle; callers that no
	// longer want it must Close it.
	Load(ctx context.Context, path string, done func(Handle, error))
}

// Handle is one loaded sound.
type Handle interface {
	// Start begins output. onEnd is called once, on the owner's goroutine,
	// when the sound finishes: with nil on natural end, or with the decode
	// error that cut it short. It is not called after Close.
	Start(onEnd func(err error))
	Pause()
	Resume()
	Rewind() error
	Position() time.Duration
	Duration() time.Duration
	// Close stops output and releases the underlying resources.
	Close() error
}
