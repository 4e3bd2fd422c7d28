package engine

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Pause pauses playback. Fails when no track is loaded.
func (e *Engine) Pause() error {
	if e.ctrl == nil {
		return ErrNoTrack
	}
	if e.state != Playing {
		return nil
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	e.state = Paused
	return nil
}

// Unpause resumes paused playback. Fails when no track is loaded.
func (e *Engine) Unpause() error {
	if e.ctrl == nil {
		return ErrNoTrack
	}
	if e.state != Paused {
		return nil
	}
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	e.state = Playing
	return nil
}

// SeekTo moves the playback position to pos, clamped to the track bounds.
func (e *Engine) SeekTo(pos time.Duration) error {
	if e.streamer == nil {
		return ErrNoTrack
	}

	speaker.Lock()
	defer speaker.Unlock()

	n := e.format.SampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if max := e.streamer.Len(); n >= max {
		n = max - 1
	}
	return e.streamer.Seek(n)
}

// Time reports the current position and duration. The second return value
// is false when no track is loaded; that is a valid "no track" result, not
// an error.
func (e *Engine) Time() (TrackTime, bool) {
	if e.streamer == nil {
		return TrackTime{}, false
	}

	speaker.Lock()
	pos := e.format.SampleRate.D(e.streamer.Position())
	total := e.format.SampleRate.D(e.streamer.Len())
	speaker.Unlock()

	return TrackTime{Position: pos, Duration: total}, true
}
