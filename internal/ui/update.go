package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quaver/internal/runner"
)

// rewindThreshold is how far into a track "previous" just restarts it
// instead of jumping to the previous track.
const rewindThreshold = 2 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.drainResults()
		m.drainErrors()
		m.snap = m.runner.Snapshot()
		if title := m.windowTitle(); title != m.lastTitle {
			m.lastTitle = title
			return m, tea.Batch(tickCmd(), tea.SetWindowTitle(title))
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.tracks)-1 {
			m.cursor++
		}

	case "enter":
		m.runner.Send(runner.PlayTrack{Index: m.cursor})

	case " ":
		m.runner.Send(runner.TogglePause{})

	case "n":
		m.runner.Send(runner.PlayNext{})

	case "p":
		m.runner.Send(previousCommand(m.snap.Time.Position))

	case "left":
		m.runner.Send(runner.SeekBy{Offset: -m.seekStep})

	case "right":
		m.runner.Send(runner.SeekBy{Offset: m.seekStep})

	case "+", "=":
		m.runner.Send(runner.SetVolume{Value: m.snap.Volume + m.volumeStep})

	case "-":
		m.runner.Send(runner.SetVolume{Value: m.snap.Volume - m.volumeStep})
	}

	return m, nil
}

// previousCommand picks between restarting the current track and jumping to
// the previous one, depending on how far playback has progressed.
func previousCommand(position time.Duration) runner.Command {
	if position < rewindThreshold {
		return runner.SeekTo{Position: 0}
	}
	return runner.PlayPrevious{}
}
