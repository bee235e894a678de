package playback

import "github.com/llehouerou/mcsounds/internal/catalog"

// EventKind identifies a session lifecycle notification.
type EventKind int

const (
	// EventStarted fires when a requested track begins sounding.
	EventStarted EventKind = iota
	// EventPaused fires on Playing → Paused.
	EventPaused
	// EventResumed fires on Paused → Playing.
	EventResumed
	// EventStopped fires when a session is torn down by Stop or replaced by
	// a newer Play. It never fires for a session that ended on its own.
	EventStopped
	// EventEnded fires when the media reaches its natural end.
	EventEnded
	// EventFailed fires when the media could not be loaded or decoded.
	EventFailed
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	case EventEnded:
		return "ended"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StopReason tells why a session was stopped.
type StopReason int

const (
	// ReasonUser is an explicit Stop call.
	ReasonUser StopReason = iota
	// ReasonReplaced is a Play call superseding the session.
	ReasonReplaced
)

// Event is emitted to engine subscribers.
type Event struct {
	Kind  EventKind
	Track catalog.Track
	// Reason is set for EventStopped.
	Reason StopReason
	// Err is set for EventFailed.
	Err error
}
