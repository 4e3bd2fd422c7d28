package runner

import (
	"errors"
	"math"
	"time"
)

// Command is an intent to change playback state. Commands are opaque to
// their producers: only the runner's processing loop interprets them.
type Command interface {
	isCommand()
}

// Play starts playback of the current track, or resumes when paused.
type Play struct{}

// Pause pauses playback.
type Pause struct{}

// TogglePause pauses if playing, otherwise resumes. Resuming a naturally
// ended track advances to the next one.
type TogglePause struct{}

// PlayNext advances to the next track, wrapping at the end of the queue.
type PlayNext struct{}

// PlayPrevious retreats to the previous track, wrapping at the start of the
// queue.
type PlayPrevious struct{}

// PlayTrack jumps to the track at Index. Out-of-range indexes are rejected,
// never clamped.
type PlayTrack struct {
	Index int
}

// SeekTo moves playback to an absolute position from track start.
type SeekTo struct {
	Position time.Duration
}

// SeekBy moves playback by a signed offset from the current position.
type SeekBy struct {
	Offset time.Duration
}

// SetVolume sets the session volume. Values outside [0, 1] are clamped;
// non-finite values are rejected.
type SetVolume struct {
	Value float64
}

func (Play) isCommand()         {}
func (Pause) isCommand()        {}
func (TogglePause) isCommand()  {}
func (PlayNext) isCommand()     {}
func (PlayPrevious) isCommand() {}
func (PlayTrack) isCommand()    {}
func (SeekTo) isCommand()       {}
func (SeekBy) isCommand()       {}
func (SetVolume) isCommand()    {}

// Errors reported when a command is rejected or cannot be applied.
var (
	ErrIndexOutOfRange = errors.New("runner: track index out of range")
	ErrInvalidVolume   = errors.New("runner: volume is not a finite number")
	ErrEmptyQueue      = errors.New("runner: queue is empty")
)

// validateLocked rejects malformed payloads before they reach the engine.
// Callers must hold the write lock.
func (r *Runner) validateLocked(cmd Command) error {
	switch c := cmd.(type) {
	case PlayTrack:
		if c.Index < 0 || c.Index >= len(r.queue) {
			return ErrIndexOutOfRange
		}
	case SetVolume:
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return ErrInvalidVolume
		}
	}
	return nil
}
