// Package runner owns the playback session state. It is the only component
// allowed to mutate the engine: every control surface submits commands into
// one ordered mailbox consumed by a single processing loop, and observes the
// session through snapshot accessors that never see a torn update.
package runner

import (
	"errors"
	"sync"
	"time"

	"quaver/internal/engine"
)

// pollInterval is how often the processing loop refreshes the last-known
// track time and checks for natural end-of-track.
const pollInterval = 100 * time.Millisecond

// errorBufferSize bounds the error channel; excess errors are dropped rather
// than blocking the loop.
const errorBufferSize = 16

// Snapshot is a field-consistent copy of the observable session state,
// taken under a single read lock.
type Snapshot struct {
	Playing bool
	Volume  float64
	Index   int
	Time    engine.TrackTime
}

// Runner is the sole owner of the playback session.
type Runner struct {
	mu      sync.RWMutex
	engine  engine.Interface
	folder  string
	queue   []string
	index   int
	playing bool
	volume  float64
	time    engine.TrackTime

	mail *mailbox
	errs chan error

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a runner for the queue of file names found in folder. The
// initial volume is clamped into [0, 1] and applied to the engine.
func New(eng engine.Interface, folder string, queue []string, volume float64) *Runner {
	r := &Runner{
		engine: eng,
		folder: folder,
		queue:  queue,
		volume: clampVolume(volume),
		errs:   make(chan error, errorBufferSize),
		done:   make(chan struct{}),
	}
	r.mail = newMailbox(r.done)
	eng.SetVolume(r.volume)
	return r
}

// Send queues a command for the processing loop. Safe to call from any
// goroutine; producers need no coordination between each other.
func (r *Runner) Send(cmd Command) {
	r.mail.Send(cmd)
}

// Errors exposes failures from asynchronously applied commands. The channel
// is buffered and never blocks the loop; consumers drain it opportunistically.
func (r *Runner) Errors() <-chan error {
	return r.errs
}

// Run consumes the command mailbox until Close is called. It is the only
// goroutine that applies commands.
func (r *Runner) Run() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case cmd := <-r.mail.Receive():
			if err := r.Apply(cmd); err != nil {
				r.reportError(err)
			}
		case <-ticker.C:
			r.refresh()
		}
	}
}

// Close stops the processing loop and performs one guaranteed end-current
// on the engine to release audio resources before the process terminates.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.done)

		r.mu.Lock()
		defer r.mu.Unlock()
		if err := r.engine.EndCurrent(); err != nil && !errors.Is(err, engine.ErrNoTrack) {
			r.reportError(err)
		}
		r.playing = false
	})
}

// Apply consumes one command: exactly one engine operation plus the matching
// session state update, atomic with respect to snapshot readers.
func (r *Runner) Apply(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validateLocked(cmd); err != nil {
		return err
	}

	switch c := cmd.(type) {
	case Play:
		return r.playLocked()
	case Pause:
		return r.pauseLocked()
	case TogglePause:
		return r.toggleLocked()
	case PlayNext:
		return r.playNextLocked()
	case PlayPrevious:
		return r.playPreviousLocked()
	case PlayTrack:
		return r.playTrackLocked(c.Index)
	case SeekTo:
		return r.seekLocked(c.Position)
	case SeekBy:
		return r.seekLocked(r.currentPositionLocked() + c.Offset)
	case SetVolume:
		return r.setVolumeLocked(c.Value)
	}
	return nil
}

func (r *Runner) playLocked() error {
	if r.playing {
		return nil
	}
	var err error
	if r.engine.State() == engine.Paused {
		err = r.engine.Unpause()
	} else {
		if len(r.queue) == 0 {
			return ErrEmptyQueue
		}
		err = r.engine.Play(r.index)
	}
	if err != nil {
		return err
	}
	r.playing = true
	r.refreshTimeLocked()
	return nil
}

func (r *Runner) pauseLocked() error {
	if err := r.engine.Pause(); err != nil {
		return err
	}
	r.playing = false
	return nil
}

func (r *Runner) toggleLocked() error {
	if r.playing {
		return r.pauseLocked()
	}
	// Resuming a track that already finished advances to the next one.
	if r.engine.HasEnded() {
		return r.playNextLocked()
	}
	return r.playLocked()
}

func (r *Runner) playNextLocked() error {
	if len(r.queue) == 0 {
		return ErrEmptyQueue
	}
	next := r.index + 1
	if next >= len(r.queue) {
		next = 0
	}
	return r.startTrackLocked(next)
}

func (r *Runner) playPreviousLocked() error {
	if len(r.queue) == 0 {
		return ErrEmptyQueue
	}
	prev := r.index - 1
	if prev < 0 {
		prev = len(r.queue) - 1
	}
	return r.startTrackLocked(prev)
}

func (r *Runner) playTrackLocked(index int) error {
	// validateLocked already checked the range.
	return r.startTrackLocked(index)
}

// startTrackLocked ends the current decode session cleanly, then starts the
// track at index. Ending first releases decode resources deterministically.
func (r *Runner) startTrackLocked(index int) error {
	if err := r.engine.EndCurrent(); err != nil && !errors.Is(err, engine.ErrNoTrack) {
		return err
	}
	if err := r.engine.Play(index); err != nil {
		return err
	}
	r.index = index
	r.playing = true
	r.refreshTimeLocked()
	return nil
}

// seekLocked pauses the engine, applies the target position and resumes
// only if the session was playing before the seek.
func (r *Runner) seekLocked(target time.Duration) error {
	wasPlaying := r.playing

	if err := r.engine.Pause(); err != nil {
		return err
	}
	if target < 0 {
		target = 0
	}
	if err := r.engine.SeekTo(target); err != nil {
		return err
	}
	if wasPlaying {
		if err := r.engine.Unpause(); err != nil {
			return err
		}
	}
	r.refreshTimeLocked()
	return nil
}

func (r *Runner) setVolumeLocked(value float64) error {
	v := clampVolume(value)
	r.engine.SetVolume(v)
	r.volume = v
	return nil
}

// refresh updates the last-known track time and auto-advances when the
// engine reports a natural end-of-track.
func (r *Runner) refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refreshTimeLocked()

	if r.playing && r.engine.HasEnded() {
		if len(r.queue) == 0 {
			r.playing = false
			return
		}
		if err := r.playNextLocked(); err != nil {
			r.playing = false
			r.reportError(err)
		}
	}
}

func (r *Runner) refreshTimeLocked() {
	if t, ok := r.engine.Time(); ok {
		r.time = t
	}
}

func (r *Runner) currentPositionLocked() time.Duration {
	if t, ok := r.engine.Time(); ok {
		return t.Position
	}
	return r.time.Position
}

func (r *Runner) reportError(err error) {
	select {
	case r.errs <- err:
	default:
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
