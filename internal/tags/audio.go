package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Duration probes the playable length of an audio file by opening a decoder
// and asking for the stream length. This is IO-bound and must only be called
// from background workers.
func Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	streamer, format, err := Decode(f, path)
	if err != nil {
		f.Close()
		return 0, err
	}
	defer streamer.Close()
	defer f.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Decode opens the beep decoder matching the file extension.
func Decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		return mp3.Decode(f)
	case ExtFLAC:
		return flac.Decode(f)
	case ExtOGG:
		return vorbis.Decode(f)
	case ExtWAV:
		return wav.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
}
