package notify

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/playback"
)

// NowPlayingTimeout is how long a "now playing" notification stays up (ms).
const NowPlayingTimeout = 3000

// NowPlaying turns engine Started events into desktop notifications. Each
// notification replaces the previous one.
type NowPlaying struct {
	notifier Notifier
	logger   zerolog.Logger
	lastID   uint32
}

// NewNowPlaying creates a NowPlaying sending through n.
func NewNowPlaying(n Notifier, logger zerolog.Logger) *NowPlaying {
	return &NowPlaying{
		notifier: n,
		logger:   logger.With().Str("component", "notify").Logger(),
	}
}

// HandleEvent is a playback.Engine listener.
func (np *NowPlaying) HandleEvent(ev playback.Event) {
	if ev.Kind != playback.EventStarted {
		return
	}
	id, err := np.notifier.Notify(Notification{
		Title:      ev.Track.DisplayName(),
		Body:       ev.Track.Category,
		Icon:       iconFor(ev.Track.Path),
		Timeout:    NowPlayingTimeout,
		ReplacesID: np.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		np.logger.Debug().Err(err).Msg("notification failed")
		return
	}
	np.lastID = id
}
