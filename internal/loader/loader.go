// Package loader extracts per-track metadata in the background. Tracks are
// processed sequentially to bound peak resource use, and each field is
// emitted as soon as it is known so the UI can render partial metadata
// progressively.
package loader

import (
	"time"

	"quaver/internal/tags"
)

const resultBuffer = 64

// Result is one metadata field for one queue index. Each field arrives as
// an independent message, not as part of an aggregate record.
type Result interface {
	isResult()
}

// Length reports the playable duration of the track at Index.
type Length struct {
	Index    int
	Duration time.Duration
}

// Artist reports the tagged artist of the track at Index.
type Artist struct {
	Index  int
	Artist string
}

// Title reports the tagged title of the track at Index.
type Title struct {
	Index int
	Title string
}

func (Length) isResult() {}
func (Artist) isResult() {}
func (Title) isResult()  {}

// Run processes paths one at a time and streams each field out as soon as
// it is known. known maps queue indexes to durations restored from a
// previous session; those indexes are reported without re-probing the file.
//
// A per-track decode failure is swallowed: whatever subset of fields
// succeeded is emitted (possibly none) and the scan continues. There is no
// cancellation; the loader runs to completion once started and the returned
// channel is closed when every path has been visited.
func Run(paths []string, known map[int]time.Duration) <-chan Result {
	out := make(chan Result, resultBuffer)

	go func() {
		defer close(out)
		for i, path := range paths {
			if d, ok := known[i]; ok {
				out <- Length{Index: i, Duration: d}
			} else if d, err := tags.Duration(path); err == nil {
				out <- Length{Index: i, Duration: d}
			}

			t, err := tags.Read(path)
			if err != nil {
				// Bad file: emit nothing more for it, keep scanning.
				continue
			}
			if t.Artist != "" {
				out <- Artist{Index: i, Artist: t.Artist}
			}
			if t.Title != "" {
				out <- Title{Index: i, Title: t.Title}
			}
		}
	}()

	return out
}
