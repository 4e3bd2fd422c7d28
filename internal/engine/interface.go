package engine

import "time"

// Interface defines the playback engine contract for dependency injection
// and testing. Implementations are not safe for concurrent use: the runner
// serializes all access.
type Interface interface {
	Play(index int) error
	PlayNext() error
	PlayPrevious() error
	Pause() error
	Unpause() error
	EndCurrent() error
	SeekTo(pos time.Duration) error
	SetVolume(level float64)
	Volume() float64
	State() State
	HasEnded() bool
	Index() int
	Len() int
	CurrentTrackName() string
	Time() (TrackTime, bool)
}

// Verify Engine implements Interface at compile time.
var _ Interface = (*Engine)(nil)
