//go:build linux

package bus

import (
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"quaver/internal/runner"
	"quaver/internal/track"
)

// Adapter exposes the session on the desktop media-control bus (MPRIS over
// D-Bus) and implements Sink so the broadcaster can signal property changes.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	player *playerAdapter
}

// NewAdapter creates and starts a new MPRIS adapter bound to the runner.
func NewAdapter(r *runner.Runner) (*Adapter, error) {
	a := &Adapter{}

	root := &rootAdapter{}
	a.player = &playerAdapter{runner: r}

	a.server = server.NewServer("quaver", root, a.player)
	a.events = events.NewEventHandler(a.server)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// PropertiesChanged implements Sink. The staged metadata is stored on the
// player adapter first: the library reads current values back through the
// adapter when emitting each signal.
func (a *Adapter) PropertiesChanged(props []Property) error {
	for _, p := range props {
		var err error
		switch v := p.(type) {
		case Playing:
			err = a.events.Player.OnPlayPause()
		case Volume:
			err = a.events.Player.OnVolume()
		case Metadata:
			a.player.setMetadata(v)
			err = a.events.Player.OnTitle()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Verify Adapter implements Sink at compile time.
var _ Sink = (*Adapter)(nil)

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Quaver", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Control
// methods only ever send commands into the runner mailbox; queries read
// snapshots.
type playerAdapter struct {
	runner *runner.Runner

	mu   sync.Mutex
	meta Metadata
}

func (p *playerAdapter) setMetadata(m Metadata) {
	p.mu.Lock()
	p.meta = m
	p.mu.Unlock()
}

func (p *playerAdapter) Next() error {
	p.runner.Send(runner.PlayNext{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.runner.Send(runner.PlayPrevious{})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.runner.Send(runner.Pause{})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.runner.Send(runner.TogglePause{})
	return nil
}

func (p *playerAdapter) Stop() error {
	return nil // Not supported - the session outlives the bridge
}

func (p *playerAdapter) Play() error {
	p.runner.Send(runner.Play{})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.runner.Send(runner.SeekBy{Offset: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.runner.Send(runner.SeekTo{Position: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.runner.Playback() {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	p.mu.Lock()
	m := p.meta
	p.mu.Unlock()

	if m.Title == "" {
		// No lookup has happened yet; fall back to the queue name.
		if path, err := p.runner.PathForTrack(p.runner.Index()); err == nil {
			m.Title = track.NameWithoutExt(path)
		}
		m.ID = trackID
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(m.ID),
		Length:  types.Microseconds(m.Length.Microseconds()),
		Title:   m.Title,
		Artist:  m.Artists,
	}
	if m.ArtPath != "" {
		meta.ArtUrl = "file://" + m.ArtPath
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.runner.Volume(), nil
}

func (p *playerAdapter) SetVolume(volume float64) error {
	p.runner.Send(runner.SetVolume{Value: volume})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.runner.Time().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) { return true, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return true, nil }

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.runner.Len() > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return true, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }
