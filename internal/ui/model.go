// Package ui implements the terminal front end: a track list over the
// shared queue plus a player bar, all driven by runner snapshots.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"quaver/internal/errmsg"
	"quaver/internal/loader"
	"quaver/internal/runner"
	"quaver/internal/track"
)

const refreshInterval = 250 * time.Millisecond

// tickMsg drives the periodic snapshot refresh.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root bubbletea model.
type Model struct {
	runner  *runner.Runner
	results <-chan loader.Result

	tracks []track.Track
	cursor int

	snap      runner.Snapshot
	status    string
	lastTitle string

	progress   progress.Model
	seekStep   time.Duration
	volumeStep float64

	width  int
	height int
}

// New builds the root model. The tracks slice is owned by the model from
// here on; metadata results are folded into it as they arrive.
func New(r *runner.Runner, tracks []track.Track, results <-chan loader.Result, seekStep time.Duration, volumeStep float64) Model {
	return Model{
		runner:     r,
		results:    results,
		tracks:     tracks,
		snap:       r.Snapshot(),
		progress:   progress.New(progress.WithDefaultGradient()),
		seekStep:   seekStep,
		volumeStep: volumeStep,
	}
}

// Tracks returns the track list with whatever metadata has arrived so far.
func (m Model) Tracks() []track.Track {
	return m.tracks
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// drainResults folds pending loader results into the track list without
// blocking. A closed channel disables further draining.
func (m *Model) drainResults() {
	if m.results == nil {
		return
	}
	for {
		select {
		case res, ok := <-m.results:
			if !ok {
				m.results = nil
				return
			}
			m.applyResult(res)
		default:
			return
		}
	}
}

func (m *Model) applyResult(res loader.Result) {
	switch r := res.(type) {
	case loader.Length:
		if r.Index >= 0 && r.Index < len(m.tracks) {
			m.tracks[r.Index].Duration = r.Duration
		}
	case loader.Artist:
		if r.Index >= 0 && r.Index < len(m.tracks) {
			m.tracks[r.Index].Artist = r.Artist
		}
	case loader.Title:
		if r.Index >= 0 && r.Index < len(m.tracks) {
			m.tracks[r.Index].Title = r.Title
		}
	}
}

// windowTitle names the terminal window after the current track.
func (m Model) windowTitle() string {
	index := m.snap.Index
	if index < 0 || index >= len(m.tracks) || !m.snap.Playing {
		return "Quaver"
	}
	return "Quaver - " + m.tracks[index].DisplayTitle()
}

// drainErrors surfaces runner errors in the status line, newest wins.
func (m *Model) drainErrors() {
	for {
		select {
		case err := <-m.runner.Errors():
			m.status = errmsg.Format(errmsg.OpPlayback, err)
		default:
			return
		}
	}
}
