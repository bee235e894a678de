package sequence

// Progress locates the current sound within a session.
type Progress struct {
	// Position is 1-based.
	Position int
	Total    int
	Category string
}

// FinishReason tells how a session ended.
type FinishReason int

const (
	// ReasonCompleted: the last sound ended.
	ReasonCompleted FinishReason = iota
	// ReasonCancelled: Stop was called, a new session started, or the queue
	// was replaced.
	ReasonCancelled
)

func (r FinishReason) String() string {
	switch r {
	case ReasonCompleted:
		return "completed"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// EventKind identifies a session notification.
type EventKind int

const (
	EventStarted EventKind = iota
	EventProgress
	EventFinished
)

// Event is emitted to Player subscribers.
type Event struct {
	Kind     EventKind
	Progress Progress
	// Reason is set for EventFinished.
	Reason FinishReason
}
