// Package sequence plays every sound of one category in catalog order.
//
// A session is a thin layer over the queue coordinator: Start installs the
// category as the queue, and advancement is the coordinator's own
// auto-advance. The session ends when the queue runs out, when Stop is
// called, or when anyone else replaces the queue.
package sequence

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/observer"
	"github.com/llehouerou/mcsounds/internal/queue"
)

var (
	// ErrFavoritesCategory is returned when starting the favorites pseudo-category.
	ErrFavoritesCategory = errors.New("favorites cannot be played sequentially")
	// ErrEmptyCategory is returned when the category has no sounds.
	ErrEmptyCategory = errors.New("category has no sounds")
)

// Coordinator is the part of queue.Coordinator a session drives.
type Coordinator interface {
	SetQueue(tracks []catalog.Track, start int)
	PlayCurrent()
	Stop()
	CurrentIndex() int
	Len() int
	SetAdvanceDelay(d queue.DelayFunc)
	Subscribe(fn func(queue.Change)) func()
}

var _ Coordinator = (*queue.Coordinator)(nil)

// AfterFunc runs fn on the loop goroutine once d has elapsed and returns a
// function that cancels it.
type AfterFunc func(d time.Duration, fn func()) (stop func())

// Option configures a Player.
type Option func(*Player)

// WithGap pauses for d between two sounds of a session.
func WithGap(d time.Duration, after AfterFunc) Option {
	return func(p *Player) {
		p.gap = d
		p.after = after
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Player) {
		p.logger = logger.With().Str("component", "sequence").Logger()
	}
}

// Player runs sequential sessions. It must only be used from the loop
// goroutine.
type Player struct {
	catalog *catalog.Catalog
	coord   Coordinator
	logger  zerolog.Logger

	gap   time.Duration
	after AfterFunc

	active   bool
	category string
	starting bool

	listeners   observer.Listeners[Event]
	unsubscribe func()
}

// New creates an idle player over cat.
func New(cat *catalog.Catalog, coord Coordinator, opts ...Option) *Player {
	if cat == nil {
		cat = catalog.Empty()
	}
	p := &Player{
		catalog: cat,
		coord:   coord,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.unsubscribe = coord.Subscribe(p.onQueueChange)
	return p
}

// Close ends any session silently and detaches from the coordinator.
func (p *Player) Close() {
	if p.active {
		p.end()
	}
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.listeners.Clear()
}

// Subscribe registers fn for session events.
func (p *Player) Subscribe(fn func(Event)) func() {
	return p.listeners.Subscribe(fn)
}

// SetCatalog swaps the catalog used by future sessions.
func (p *Player) SetCatalog(cat *catalog.Catalog) {
	if cat == nil {
		cat = catalog.Empty()
	}
	p.catalog = cat
}

// Active reports whether a session is running.
func (p *Player) Active() bool {
	return p.active
}

// Category returns the category of the running session, or "".
func (p *Player) Category() string {
	if !p.active {
		return ""
	}
	return p.category
}

// Progress returns the 1-based position of the current sound.
func (p *Player) Progress() (Progress, bool) {
	if !p.active {
		return Progress{}, false
	}
	return Progress{
		Position: p.coord.CurrentIndex() + 1,
		Total:    p.coord.Len(),
		Category: p.category,
	}, true
}

// Start plays every sound of category in order. A running session is
// cancelled first. Rejected requests leave everything unchanged.
func (p *Player) Start(category string) error {
	if category == catalog.FavoritesCategory {
		return ErrFavoritesCategory
	}
	tracks := p.catalog.InCategory(category)
	if len(tracks) == 0 {
		return ErrEmptyCategory
	}

	if p.active {
		p.finish(ReasonCancelled)
	}

	p.active = true
	p.category = category
	if p.gap > 0 && p.after != nil {
		p.coord.SetAdvanceDelay(func(fn func()) func() {
			return p.after(p.gap, fn)
		})
	}

	p.starting = true
	p.coord.SetQueue(tracks, 0)
	p.starting = false

	p.logger.Info().Str("category", category).Int("sounds", len(tracks)).Msg("sequential play started")
	prog, _ := p.Progress()
	p.listeners.Emit(Event{Kind: EventStarted, Progress: prog})

	p.coord.PlayCurrent()
	return nil
}

// Stop cancels the running session and stops playback. It does nothing
// when no session is running.
func (p *Player) Stop() {
	if !p.active {
		return
	}
	category := p.category
	p.end()
	p.coord.Stop()
	p.logger.Info().Str("category", category).Msg("sequential play cancelled")
	p.listeners.Emit(Event{Kind: EventFinished, Reason: ReasonCancelled, Progress: Progress{Category: category}})
}

func (p *Player) onQueueChange(ch queue.Change) {
	if !p.active || p.starting {
		return
	}
	switch ch.Kind {
	case queue.ChangeExhausted:
		p.finish(ReasonCompleted)
	case queue.ChangeReplaced, queue.ChangeRestored:
		p.finish(ReasonCancelled)
	case queue.ChangeCursor, queue.ChangeEdited:
		prog, _ := p.Progress()
		p.listeners.Emit(Event{Kind: EventProgress, Progress: prog})
	case queue.ChangeLoop, queue.ChangeSnapshot:
	}
}

func (p *Player) finish(reason FinishReason) {
	prog, _ := p.Progress()
	p.end()
	p.logger.Info().Str("category", prog.Category).Str("reason", reason.String()).Msg("sequential play finished")
	p.listeners.Emit(Event{Kind: EventFinished, Reason: reason, Progress: prog})
}

func (p *Player) end() {
	p.active = false
	p.category = ""
	p.coord.SetAdvanceDelay(nil)
}
