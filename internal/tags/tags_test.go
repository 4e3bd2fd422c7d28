package tags

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeWAV writes a playable mono 16-bit PCM file with the given number of
// samples at 8 kHz, so duration probing has something real to decode.
func writeWAV(t *testing.T, path string, samples int) {
	t.Helper()

	const sampleRate = 8000
	dataLen := samples * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write wav: %v", err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"track.mp3", true},
		{"track.MP3", true},
		{"track.flac", true},
		{"track.ogg", true},
		{"track.wav", true},
		{"track.m4a", false},
		{"track.txt", false},
		{"noextension", false},
		{"/some/dir/track.mp3", true},
	}

	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDuration_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, 8000) // one second at 8 kHz

	d, err := Duration(path)
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if d != time.Second {
		t.Errorf("Duration = %v, want 1s", d)
	}
}

func TestDuration_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := Duration(path); err == nil {
		t.Error("Duration on unsupported extension must fail")
	}
}

func TestDuration_MissingFile(t *testing.T) {
	if _, err := Duration("/nonexistent/track.mp3"); err == nil {
		t.Error("Duration on a missing file must fail")
	}
}

func TestRead_UntaggedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, 800)

	if _, err := Read(path); err == nil {
		t.Error("Read on a file without tags must fail")
	}
}

func TestExtractCoverArt_FolderFallback(t *testing.T) {
	dir := t.TempDir()
	trackPath := filepath.Join(dir, "tone.wav")
	writeWAV(t, trackPath, 800)

	art := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), art, 0o644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	data, mime, err := ExtractCoverArt(trackPath)
	if err != nil {
		t.Fatalf("ExtractCoverArt failed: %v", err)
	}
	if !bytes.Equal(data, art) {
		t.Errorf("art data = %v, want %v", data, art)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mime)
	}
}

func TestExtractCoverArt_NoArt(t *testing.T) {
	dir := t.TempDir()
	trackPath := filepath.Join(dir, "tone.wav")
	writeWAV(t, trackPath, 800)

	data, _, err := ExtractCoverArt(trackPath)
	if err != nil {
		t.Fatalf("ExtractCoverArt failed: %v", err)
	}
	if data != nil {
		t.Errorf("expected no art, got %d bytes", len(data))
	}
}
