// internal/playback/state.go
package playback

// State represents the engine's session state.
//
//	┌──────┐  Play   ┌─────────┐  loaded  ┌─────────┐
//	│ Idle │ ──────▶ │ Loading │ ───────▶ │ Playing │ ◀─┐
//	└──────┘         └─────────┘          └─────────┘   │ Resume
//	   ▲                  │ error / Stop       │ Pause  │
//	   │                  ▼                    ▼        │
//	   └───────────── (Idle) ◀── Stop/end ─ ┌────────┐ ─┘
//	                                        │ Paused │
//	                                        └────────┘
//
// Play is valid from every state and always tears the current session down
// first. Pause, Resume and Rewind outside their source states are no-ops.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a session exists (loading, playing or paused).
func (s State) IsActive() bool {
	return s != StateIdle
}
