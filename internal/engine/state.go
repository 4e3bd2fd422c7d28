package engine

import "time"

// State represents the engine playback state machine.
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Paused  → Playing (via Unpause)
//   - Playing/Paused → Stopped (via EndCurrent)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// TrackTime reports the elapsed position and total duration of the track
// currently loaded in the engine.
type TrackTime struct {
	Position time.Duration
	Duration time.Duration
}
