// Package engine implements the queue-indexed audio playback primitive on
// top of beep. It decodes one track at a time, tracks its own queue index
// and reports natural end-of-track through HasEnded.
package engine

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"quaver/internal/tags"
)

// Errors reported by mutating engine operations.
var (
	ErrNoTrack         = errors.New("engine: no current track")
	ErrEmptyQueue      = errors.New("engine: empty queue")
	ErrIndexOutOfRange = errors.New("engine: track index out of range")
)

// Engine plays tracks from a fixed ordered path list.
type Engine struct {
	paths []string
	index int
	state State

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	volumeLevel float64

	// ended is set by the speaker callback when the current track finishes
	// naturally. It is the only field touched from the speaker goroutine.
	ended atomic.Bool
}

var speakerInitialized bool

// New creates an engine for the given ordered path list.
func New(paths []string) *Engine {
	return &Engine{
		paths:       paths,
		state:       Stopped,
		volumeLevel: 1.0,
	}
}

// Play loads and starts the track at index, releasing any current track
// first.
func (e *Engine) Play(index int) error {
	if len(e.paths) == 0 {
		return ErrEmptyQueue
	}
	if index < 0 || index >= len(e.paths) {
		return ErrIndexOutOfRange
	}

	if err := e.EndCurrent(); err != nil && !errors.Is(err, ErrNoTrack) {
		return err
	}

	path := e.paths[index]
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	e.file = f
	e.streamer = streamer
	e.format = format
	e.ctrl = &beep.Ctrl{Streamer: streamer}
	e.volume = &effects.Volume{
		Streamer: e.ctrl,
		Base:     2,
		Volume:   levelToVolume(e.volumeLevel),
		Silent:   e.volumeLevel <= 0,
	}
	e.index = index
	e.state = Playing
	e.ended.Store(false)

	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		e.ended.Store(true)
	})))

	return nil
}

// PlayNext advances to the next track, wrapping past the last index back
// to 0.
func (e *Engine) PlayNext() error {
	if len(e.paths) == 0 {
		return ErrEmptyQueue
	}
	next := e.index + 1
	if next >= len(e.paths) {
		next = 0
	}
	return e.Play(next)
}

// PlayPrevious retreats to the previous track, wrapping before index 0 to
// the last track.
func (e *Engine) PlayPrevious() error {
	if len(e.paths) == 0 {
		return ErrEmptyQueue
	}
	prev := e.index - 1
	if prev < 0 {
		prev = len(e.paths) - 1
	}
	return e.Play(prev)
}

// EndCurrent flushes and releases the active decode session.
func (e *Engine) EndCurrent() error {
	if e.state == Stopped {
		return ErrNoTrack
	}

	speaker.Clear()

	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}

	e.ctrl = nil
	e.volume = nil
	e.state = Stopped
	e.ended.Store(false)

	return nil
}

// State returns the engine playback state.
func (e *Engine) State() State { return e.state }

// HasEnded returns true when the current track finished on its own.
func (e *Engine) HasEnded() bool { return e.ended.Load() }

// Index returns the engine-level queue index.
func (e *Engine) Index() int { return e.index }

// Len returns the number of tracks in the engine queue.
func (e *Engine) Len() int { return len(e.paths) }

// CurrentTrackName returns the file name of the current track, or the empty
// string when the queue is empty.
func (e *Engine) CurrentTrackName() string {
	if len(e.paths) == 0 || e.index >= len(e.paths) {
		return ""
	}
	return filepath.Base(e.paths[e.index])
}

// decode opens the decoder matching the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	return tags.Decode(f, path)
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means no change, -1 half
// volume, -2 quarter. 0.0 maps to effectively silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
