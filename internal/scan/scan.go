// Package scan discovers the audio files of a folder.
package scan

import (
	"fmt"
	"os"

	"quaver/internal/tags"
)

// Folder returns the audio file names found directly in dir, in raw
// directory order. The order is whatever the filesystem yields: it becomes
// the queue order for the session, so it must not be sorted here.
// A failure to read the directory is fatal to the load attempt.
func Folder(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open folder: %w", err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !tags.IsAudioFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
