package app

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/favorites"
	"github.com/llehouerou/mcsounds/internal/notify"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/player"
	"github.com/llehouerou/mcsounds/internal/queue"
	"github.com/llehouerou/mcsounds/internal/sequence"
	"github.com/llehouerou/mcsounds/internal/state"
)

// Options configures a Core.
type Options struct {
	Media   player.Media
	State   state.Interface
	Catalog *catalog.Catalog
	// Gap is the pause between sounds of a sequential session. Zero
	// disables it.
	Gap time.Duration
	// After schedules the gap. It must deliver fn on the loop goroutine.
	After sequence.AfterFunc
	// PersistQueue saves every queue change to State. Sessions that must
	// leave the saved queue alone, like headless play, keep it off.
	PersistQueue bool
	// ExportDir receives sound copies saved from the browser. Empty selects
	// the user's download directory.
	ExportDir string
	Logger    zerolog.Logger
}

// Core wires the playback components together. It is shared by the TUI and
// the headless commands and, like its parts, must only be used from the
// loop goroutine.
type Core struct {
	Catalog   *catalog.Catalog
	Favorites *favorites.Store
	Engine    *playback.Engine
	Queue     *queue.Coordinator
	Sequence  *sequence.Player

	exportDir string
	state     state.Interface
	logger    zerolog.Logger
	unsubs []func()
}

// NewCore builds the component graph. Nothing is loaded or played until
// Restore is called.
func NewCore(opts Options) *Core {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Empty()
	}
	engine := playback.New(opts.Media, opts.Logger)
	coord := queue.New(engine, opts.Logger)

	seqOpts := []sequence.Option{sequence.WithLogger(opts.Logger)}
	if opts.Gap > 0 && opts.After != nil {
		seqOpts = append(seqOpts, sequence.WithGap(opts.Gap, opts.After))
	}

	c := &Core{
		Catalog:   cat,
		Favorites: favorites.New(opts.State, opts.Logger),
		Engine:    engine,
		Queue:     coord,
		Sequence:  sequence.New(cat, coord, seqOpts...),
		exportDir: opts.ExportDir,
		state:     opts.State,
		logger:    opts.Logger.With().Str("component", "app").Logger(),
	}
	if opts.PersistQueue {
		c.unsubs = append(c.unsubs, coord.Subscribe(c.saveQueue))
	}
	return c
}

// Restore loads persisted favorites and the saved queue.
func (c *Core) Restore() {
	c.Favorites.Initialize()
	c.pruneFavorites()

	saved, err := c.state.GetQueue()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to load saved queue")
		return
	}
	if saved == nil || len(saved.TrackIDs) == 0 {
		return
	}

	tracks := c.Catalog.Resolve(saved.TrackIDs)
	if len(tracks) == 0 {
		return
	}
	index := 0
	if saved.CurrentIndex >= 0 && saved.CurrentIndex < len(saved.TrackIDs) {
		currentID := saved.TrackIDs[saved.CurrentIndex]
		_, i, found := lo.FindIndexOf(tracks, func(t catalog.Track) bool { return t.ID == currentID })
		if found {
			index = i
		}
	}
	c.Queue.Restore(tracks, index, saved.Loop)
	c.logger.Debug().Int("tracks", len(tracks)).Int("index", index).Msg("queue restored")
}

// SetCatalog swaps in a reloaded catalog. Favorites and queue entries whose
// sound disappeared are dropped.
func (c *Core) SetCatalog(cat *catalog.Catalog) {
	c.Catalog = cat
	c.Sequence.SetCatalog(cat)
	c.pruneFavorites()
	if removed := c.Queue.Retain(func(t catalog.Track) bool { return cat.Has(t.ID) }); removed > 0 {
		c.logger.Info().Int("removed", removed).Msg("dropped missing sounds from queue")
	}
}

// pruneFavorites forgets favorites that are not in the catalog. An empty
// catalog usually means the manifest failed to load, so nothing is pruned.
func (c *Core) pruneFavorites() {
	if c.Catalog.Len() == 0 {
		return
	}
	if n := c.Favorites.Prune(c.Catalog.Has); n > 0 {
		c.logger.Info().Int("removed", n).Msg("pruned unknown favorites")
	}
}

// EnableNotifications shows a desktop notification for every started sound.
func (c *Core) EnableNotifications(n notify.Notifier) {
	np := notify.NewNowPlaying(n, c.logger)
	c.unsubs = append(c.unsubs, c.Engine.Subscribe(np.HandleEvent))
}

// PlayNow plays track immediately. It is added to the queue if missing and
// any sequential session is cancelled.
func (c *Core) PlayNow(track catalog.Track) error {
	c.Sequence.Stop()
	c.Queue.Enqueue(track)
	i := lo.IndexOf(c.Queue.Snapshot().IDs(), track.ID)
	return c.Queue.SelectIndex(i)
}

// StopAll stops playback and any sequential session.
func (c *Core) StopAll() {
	if c.Sequence.Active() {
		c.Sequence.Stop()
		return
	}
	c.Queue.Stop()
}

// TogglePlay pauses or resumes the current sound, or starts the queue
// cursor when nothing is loaded.
func (c *Core) TogglePlay() {
	if c.Engine.State() == playback.StateIdle {
		c.Queue.PlayCurrent()
		return
	}
	c.Engine.Toggle()
}

// Close detaches every component and flushes pending state.
func (c *Core) Close() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.Sequence.Close()
	c.Queue.Close()
	c.Engine.Close()
	c.state.Flush()
}

func (c *Core) saveQueue(ch queue.Change) {
	c.state.SaveQueue(state.QueueState{
		TrackIDs:     ch.IDs(),
		CurrentIndex: ch.Index,
		Loop:         ch.Loop,
	})
}
