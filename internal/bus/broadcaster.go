package bus

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder for cover art
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"

	"quaver/internal/runner"
	"quaver/internal/tags"
	"quaver/internal/track"
)

// Broadcast cadence and art export limits.
const (
	DefaultInterval = 250 * time.Millisecond

	// trackID is the object path reported with every metadata batch.
	trackID = "/quaver"

	// maxArtSize caps exported cover art; media-control clients only render
	// small thumbnails.
	maxArtSize = 512
)

// Broadcaster periodically snapshots the runner and pushes only the fields
// that changed since its previous observation to the sink, as one batch.
type Broadcaster struct {
	runner   *runner.Runner
	sink     Sink
	interval time.Duration
	artPath  string // scratch file reused for every art export

	playing bool
	volume  float64
	index   int
}

// New creates a broadcaster. initial is the externally-supplied baseline:
// fields equal to it are not reported on the first tick. artPath is the
// scratch file location for exported album art; empty disables art export.
func New(r *runner.Runner, sink Sink, artPath string, initial runner.Snapshot) *Broadcaster {
	return &Broadcaster{
		runner:   r,
		sink:     sink,
		interval: DefaultInterval,
		artPath:  artPath,
		playing:  initial.Playing,
		volume:   initial.Volume,
		index:    initial.Index,
	}
}

// Run drives the diff loop until done closes. A slow metadata lookup delays
// the next batch rather than being cancelled.
func (b *Broadcaster) Run(done <-chan struct{}) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			b.tick()
		}
	}
}

// tick stages one batch of changed properties and emits it. Emitting
// nothing is the common case.
func (b *Broadcaster) tick() {
	snap := b.runner.Snapshot()

	var props []Property
	if snap.Playing != b.playing {
		b.playing = snap.Playing
		props = append(props, Playing(snap.Playing))
	}
	if snap.Volume != b.volume {
		b.volume = snap.Volume
		props = append(props, Volume(snap.Volume))
	}
	if snap.Index != b.index {
		b.index = snap.Index
		props = append(props, b.currentMetadata(snap.Index))
	}

	if len(props) == 0 {
		return
	}
	// A sink failure drops this batch; the next change re-stages the fields.
	_ = b.sink.PropertiesChanged(props)
}

// currentMetadata runs the metadata/art lookup on its own goroutine: the
// extraction is CPU/IO-bound and must never run while any lock is held.
func (b *Broadcaster) currentMetadata(index int) Metadata {
	ch := make(chan Metadata, 1)
	go func() {
		ch <- b.lookupMetadata(index)
	}()
	return <-ch
}

// lookupMetadata extracts title/artist/duration and exports album art for
// the track at index. A decode failure falls back to the file name as title
// with zero duration, no artist and no art.
func (b *Broadcaster) lookupMetadata(index int) Metadata {
	meta := Metadata{ID: trackID}

	path, err := b.runner.PathForTrack(index)
	if err != nil {
		return meta
	}

	meta.Title = track.NameWithoutExt(filepath.Base(path))

	if t, err := tags.Read(path); err == nil {
		if t.Title != "" {
			meta.Title = t.Title
		}
		if t.Artist != "" {
			meta.Artists = []string{t.Artist}
		}
	}
	if d, err := tags.Duration(path); err == nil {
		meta.Length = d
	}
	if b.artPath != "" {
		if p, ok := b.exportArt(path); ok {
			meta.ArtPath = p
		}
	}

	return meta
}

// exportArt writes the track's cover art to the scratch file. Any failure
// simply omits art from this metadata update.
func (b *Broadcaster) exportArt(trackPath string) (string, bool) {
	data, _, err := tags.ExtractCoverArt(trackPath)
	if err != nil || data == nil {
		return "", false
	}

	data = shrinkArt(data)

	if err := os.WriteFile(b.artPath, data, 0o644); err != nil {
		return "", false
	}
	return b.artPath, true
}

// shrinkArt downscales oversized cover images before export. Images that
// cannot be decoded are exported untouched.
func shrinkArt(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxArtSize && bounds.Dy() <= maxArtSize {
		return data
	}

	resized := resize.Thumbnail(maxArtSize, maxArtSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, nil); err != nil {
		return data
	}
	return buf.Bytes()
}
