package engine

import (
	"fmt"
	"path/filepath"
	"time"
)

// Mock is a test double for Engine. It tracks the same queue index and
// state machine without touching the speaker.
type Mock struct {
	paths       []string
	index       int
	state       State
	ended       bool
	volumeLevel float64
	time        TrackTime
	hasTrack    bool

	playErr error
	calls   []string
	seeks   []time.Duration
}

// NewMock creates a new mock engine for testing.
func NewMock(paths []string) *Mock {
	return &Mock{
		paths:       paths,
		state:       Stopped,
		volumeLevel: 1.0,
	}
}

func (m *Mock) Play(index int) error {
	m.record(fmt.Sprintf("play(%d)", index))
	if len(m.paths) == 0 {
		return ErrEmptyQueue
	}
	if index < 0 || index >= len(m.paths) {
		return ErrIndexOutOfRange
	}
	if m.playErr != nil {
		return m.playErr
	}
	m.index = index
	m.state = Playing
	m.ended = false
	m.hasTrack = true
	return nil
}

func (m *Mock) PlayNext() error {
	if len(m.paths) == 0 {
		return ErrEmptyQueue
	}
	next := m.index + 1
	if next >= len(m.paths) {
		next = 0
	}
	return m.Play(next)
}

func (m *Mock) PlayPrevious() error {
	if len(m.paths) == 0 {
		return ErrEmptyQueue
	}
	prev := m.index - 1
	if prev < 0 {
		prev = len(m.paths) - 1
	}
	return m.Play(prev)
}

func (m *Mock) Pause() error {
	m.record("pause")
	if !m.hasTrack {
		return ErrNoTrack
	}
	if m.state == Playing {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Unpause() error {
	m.record("unpause")
	if !m.hasTrack {
		return ErrNoTrack
	}
	if m.state == Paused {
		m.state = Playing
	}
	return nil
}

func (m *Mock) EndCurrent() error {
	m.record("end-current")
	if m.state == Stopped {
		return ErrNoTrack
	}
	m.state = Stopped
	m.ended = false
	m.hasTrack = false
	return nil
}

func (m *Mock) SeekTo(pos time.Duration) error {
	m.record("seek")
	if !m.hasTrack {
		return ErrNoTrack
	}
	m.seeks = append(m.seeks, pos)
	m.time.Position = pos
	return nil
}

func (m *Mock) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volumeLevel = level
}

func (m *Mock) Volume() float64 { return m.volumeLevel }

func (m *Mock) State() State { return m.state }

func (m *Mock) HasEnded() bool { return m.ended }

func (m *Mock) Index() int { return m.index }

func (m *Mock) Len() int { return len(m.paths) }

func (m *Mock) CurrentTrackName() string {
	if len(m.paths) == 0 || m.index >= len(m.paths) {
		return ""
	}
	return filepath.Base(m.paths[m.index])
}

func (m *Mock) Time() (TrackTime, bool) {
	if !m.hasTrack {
		return TrackTime{}, false
	}
	return m.time, true
}

func (m *Mock) record(op string) {
	m.calls = append(m.calls, op)
}

// Test helpers

// SimulateEnded marks the current track as having finished naturally.
func (m *Mock) SimulateEnded() { m.ended = true }

// SetTime sets the reported track time.
func (m *Mock) SetTime(t TrackTime) { m.time = t }

// SetPlayError makes every Play call fail with err.
func (m *Mock) SetPlayError(err error) { m.playErr = err }

// Calls returns the recorded operation names in call order. Play includes
// the failed validation calls.
func (m *Mock) Calls() []string { return m.calls }

// ResetCalls clears the recorded operations.
func (m *Mock) ResetCalls() { m.calls = nil }

// Seeks returns the positions passed to SeekTo.
func (m *Mock) Seeks() []time.Duration { return m.seeks }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
