//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/mcsounds/internal/playback"
)

// Adapter exposes the coordinator and engine as an MPRIS player over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. D-Bus requests arrive on
// their own goroutines; every one is forwarded through call.
func New(call Caller, queue Queue, engine Engine) (*Adapter, error) {
	a := &Adapter{}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{call: call, queue: queue, engine: engine}

	a.server = server.NewServer("mcsounds", rootAdapter, playerAdapter)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "mcsounds", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/ogg", "audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the loop
// status extension.
type playerAdapter struct {
	call   Caller
	queue  Queue
	engine Engine
}

func (p *playerAdapter) Next() error {
	return p.call(p.queue.Next)
}

func (p *playerAdapter) Previous() error {
	return p.call(p.queue.Prev)
}

func (p *playerAdapter) Pause() error {
	return p.call(p.engine.Pause)
}

func (p *playerAdapter) PlayPause() error {
	return p.call(func() {
		if p.engine.State() == playback.StateIdle {
			p.queue.PlayCurrent()
			return
		}
		p.engine.Toggle()
	})
}

func (p *playerAdapter) Stop() error {
	return p.call(p.queue.Stop)
}

func (p *playerAdapter) Play() error {
	return p.call(func() {
		switch p.engine.State() {
		case playback.StateIdle:
			p.queue.PlayCurrent()
		case playback.StatePaused:
			p.engine.Resume()
		case playback.StateLoading, playback.StatePlaying:
		}
	})
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Sounds are short; only rewinding is supported
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	if position != 0 {
		return nil
	}
	return p.call(p.engine.Rewind)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	var state playback.State
	if err := p.call(func() { state = p.engine.State() }); err != nil {
		return types.PlaybackStatusStopped, err
	}
	return playbackStatus(state), nil
}

func playbackStatus(state playback.State) types.PlaybackStatus {
	switch state {
	case playback.StatePlaying, playback.StateLoading:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateIdle:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	var meta types.Metadata
	err := p.call(func() {
		track, ok := p.engine.Current()
		if !ok {
			track, ok = p.queue.Current()
		}
		if !ok {
			return
		}
		meta = types.Metadata{
			TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
			Length:  types.Microseconds(p.engine.Duration().Microseconds()),
			Title:   track.DisplayName(),
			Album:   track.Category,
		}
		if artPath := FindCoverArt(track.Path); artPath != "" {
			meta.ArtUrl = "file://" + artPath
		}
	})
	return meta, err
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	var pos int64
	err := p.call(func() { pos = p.engine.Position().Microseconds() })
	return pos, err
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	var ok bool
	err := p.call(func() {
		ok = p.queue.Loop() || p.queue.CurrentIndex() < p.queue.Len()-1
	})
	return ok, err
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	var ok bool
	err := p.call(func() {
		ok = p.queue.Len() > 0 && (p.queue.Loop() || p.queue.CurrentIndex() > 0)
	})
	return ok, err
}

func (p *playerAdapter) CanPlay() (bool, error) {
	var ok bool
	err := p.call(func() { ok = p.queue.Len() > 0 })
	return ok, err
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	var loop bool
	if err := p.call(func() { loop = p.queue.Loop() }); err != nil {
		return types.LoopStatusNone, err
	}
	if loop {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The queue only knows whole-queue looping, so Track maps to Playlist.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.call(func() {
		p.queue.SetLoop(status != types.LoopStatusNone)
	})
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
