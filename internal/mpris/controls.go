package mpris

import (
	"time"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/queue"
)

// Caller runs fn on the loop goroutine and waits for it to finish.
type Caller func(fn func()) error

// Queue is the part of queue.Coordinator driven over MPRIS.
type Queue interface {
	PlayCurrent()
	Next()
	Prev()
	Stop()
	Loop() bool
	SetLoop(loop bool)
	Len() int
	CurrentIndex() int
	Current() (catalog.Track, bool)
}

// Engine is the part of playback.Engine driven over MPRIS.
type Engine interface {
	State() playback.State
	Current() (catalog.Track, bool)
	Pause()
	Resume()
	Toggle()
	Rewind()
	Position() time.Duration
	Duration() time.Duration
}

var (
	_ Queue  = (*queue.Coordinator)(nil)
	_ Engine = (*playback.Engine)(nil)
)
