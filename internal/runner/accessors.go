package runner

import (
	"path/filepath"

	"quaver/internal/engine"
)

// The accessors below return value copies and may be called concurrently by
// any number of observers, including while a command is mid-application.

// Index returns the current queue index.
func (r *Runner) Index() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index
}

// Queue returns a copy of the queued file names in scan order.
func (r *Runner) Queue() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	queue := make([]string, len(r.queue))
	copy(queue, r.queue)
	return queue
}

// Path returns the loaded folder path.
func (r *Runner) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.folder
}

// Playback returns true while the session is playing.
func (r *Runner) Playback() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playing
}

// Volume returns the session volume in [0, 1].
func (r *Runner) Volume() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.volume
}

// Time returns the last-known position and duration of the current track.
func (r *Runner) Time() engine.TrackTime {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.time
}

// Len returns the number of tracks in the queue.
func (r *Runner) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queue)
}

// PathForTrack returns the absolute path of the track at index i.
// The bound check is strict: i must satisfy 0 <= i < Len.
func (r *Runner) PathForTrack(i int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.queue) {
		return "", ErrIndexOutOfRange
	}
	return filepath.Join(r.folder, r.queue[i]), nil
}

// Snapshot returns a field-consistent copy of the observable state under a
// single read lock.
func (r *Runner) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Playing: r.playing,
		Volume:  r.volume,
		Index:   r.index,
		Time:    r.time,
	}
}
