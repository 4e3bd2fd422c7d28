package engine

import "github.com/gopxl/beep/v2/speaker"

// SetVolume sets the volume level, clamped to [0.0, 1.0]. The clamped value
// applies to the current track immediately and to every track played after.
func (e *Engine) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	e.volumeLevel = level

	if e.volume != nil {
		speaker.Lock()
		e.volume.Volume = levelToVolume(level)
		e.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (e *Engine) Volume() float64 {
	return e.volumeLevel
}
