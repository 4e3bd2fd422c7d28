// Package tags provides metadata reading for the audio formats the player
// can decode: tag fields, stream duration and embedded cover art.
package tags

import "strings"

// File extensions supported by the player.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtWAV  = ".wav"
)

// Tag contains the tag fields the player cares about.
type Tag struct {
	Path   string
	Title  string
	Artist string
}

// IsAudioFile returns true if the path has a supported audio file extension.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(path)
	if idx := strings.LastIndex(ext, "."); idx >= 0 {
		ext = ext[idx:]
	} else {
		return false
	}
	return ext == ExtMP3 || ext == ExtFLAC || ext == ExtOGG || ext == ExtWAV
}
