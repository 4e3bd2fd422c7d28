// Package track defines the queue track data model.
package track

import (
	"path/filepath"
	"strings"
	"time"
)

// Track is one entry of the playback queue. Name is the file name inside the
// loaded folder; Title, Artist and Duration are filled in asynchronously as
// the metadata loader reports them.
type Track struct {
	Name     string
	Title    string
	Artist   string
	Duration time.Duration
}

// DisplayTitle returns the tagged title, falling back to the file name
// without its extension when no tag has been read (yet, or at all).
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return NameWithoutExt(t.Name)
}

// NameWithoutExt strips the directory and extension from a path or file name.
func NameWithoutExt(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
