// Package bus mirrors playback state changes outward to a desktop
// media-control sink. The sink may be absent on some platforms; everything
// here no-ops cleanly against the stub variant.
package bus

import "time"

// Property is one outward-visible playback property staged for broadcast.
type Property interface {
	isProperty()
}

// Playing reports whether the session is playing.
type Playing bool

// Volume reports the session volume in [0, 1].
type Volume float64

// Metadata describes the current track for the media-control transport.
type Metadata struct {
	ID      string
	Title   string
	Artists []string
	Length  time.Duration
	ArtPath string // empty when no art is available
}

func (Playing) isProperty()  {}
func (Volume) isProperty()   {}
func (Metadata) isProperty() {}

// Sink receives batched property changes. A batch contains only properties
// that changed since the previous emission and is delivered at most once
// per broadcaster tick.
type Sink interface {
	PropertiesChanged(props []Property) error
}
