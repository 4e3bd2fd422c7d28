package ui

import (
	"fmt"
	"strings"
	"time"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Quaver"))
	b.WriteString("\n\n")

	listHeight := max(m.height-7, 1)
	b.WriteString(m.renderList(listHeight))

	b.WriteString("\n")
	b.WriteString(m.renderPlayerBar())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	} else {
		b.WriteString(helpStyle.Render("enter play · space pause · n/p skip · ←/→ seek · +/- volume · q quit"))
	}

	return b.String()
}

// renderList draws a window of the queue centered around the cursor.
func (m Model) renderList(height int) string {
	if len(m.tracks) == 0 {
		return artistStyle.Render("no tracks in folder") + "\n"
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.tracks))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderTrackLine(i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTrackLine(i int) string {
	t := m.tracks[i]

	marker := "  "
	if i == m.snap.Index && m.snap.Playing {
		marker = playSymbol + " "
	} else if i == m.snap.Index {
		marker = pauseSymbol + " "
	}

	line := t.DisplayTitle()
	if t.Artist != "" {
		line += artistStyle.Render("  " + t.Artist)
	}
	if t.Duration > 0 {
		line += durationStyle.Render("  " + formatDuration(t.Duration))
	}

	switch {
	case i == m.cursor:
		return selectedStyle.Render(marker + line)
	case i == m.snap.Index:
		return playingStyle.Render(marker) + line
	default:
		return marker + line
	}
}

// renderPlayerBar draws the current track, progress and volume.
func (m Model) renderPlayerBar() string {
	index := m.snap.Index
	if index < 0 || index >= len(m.tracks) {
		return ""
	}

	t := m.tracks[index]
	status := pauseSymbol
	if m.snap.Playing {
		status = playSymbol
	}

	timeStr := fmt.Sprintf("%s / %s",
		formatDuration(m.snap.Time.Position),
		formatDuration(m.snap.Time.Duration))
	volStr := fmt.Sprintf("vol %3.0f%%", m.snap.Volume*100)

	var ratio float64
	if m.snap.Time.Duration > 0 {
		ratio = float64(m.snap.Time.Position) / float64(m.snap.Time.Duration)
	}
	barWidth := max(m.width-len(timeStr)-len(volStr)-14, 10)
	prog := m.progress
	prog.Width = barWidth

	content := fmt.Sprintf("%s %s  %s  %s  %s",
		status, t.DisplayTitle(), prog.ViewAs(ratio), timeStr, durationStyle.Render(volStr))

	return barStyle.Width(max(m.width-2, 10)).Padding(0, 1).Render(content)
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
