package loader

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeWAV writes a playable mono 16-bit PCM file at 8 kHz.
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
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
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

// collect drains the result channel to completion.
func collect(t *testing.T, results <-chan Result) []Result {
	t.Helper()

	var all []Result
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-results:
			if !ok {
				return all
			}
			all = append(all, r)
		case <-timeout:
			t.Fatal("loader never closed its channel")
		}
	}
}

func TestRun_ProbesDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")
	writeWAV(t, path, 8000) // one second

	results := collect(t, Run([]string{path}, nil))

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (length only, no tags on wav)", len(results))
	}
	length, ok := results[0].(Length)
	if !ok {
		t.Fatalf("result = %#v, want Length", results[0])
	}
	if length.Index != 0 || length.Duration != time.Second {
		t.Errorf("Length = %+v, want index 0 duration 1s", length)
	}
}

func TestRun_KnownDurationSkipsProbe(t *testing.T) {
	// The path does not exist: the only way a Length can arrive is from the
	// known map, proving the file was never probed.
	known := map[int]time.Duration{0: 3 * time.Minute}

	results := collect(t, Run([]string{"/nonexistent/a.wav"}, known))

	var lengths []Length
	for _, r := range results {
		if l, ok := r.(Length); ok {
			lengths = append(lengths, l)
		}
	}
	if len(lengths) != 1 || lengths[0].Duration != 3*time.Minute {
		t.Errorf("lengths = %+v, want one entry of 3m", lengths)
	}
}

func TestRun_BadFileEmitsNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.mp3")
	if err := os.WriteFile(path, []byte("not an mp3 at all"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	results := collect(t, Run([]string{path}, nil))

	if len(results) != 0 {
		t.Errorf("got %d results for an undecodable file, want 0", len(results))
	}
}

func TestRun_BadFileDoesNotStopScan(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "garbage.mp3")
	good := filepath.Join(dir, "tone.wav")
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	writeWAV(t, good, 8000)

	results := collect(t, Run([]string{bad, good}, nil))

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 from the good file", len(results))
	}
	length, ok := results[0].(Length)
	if !ok || length.Index != 1 {
		t.Errorf("result = %#v, want Length for index 1", results[0])
	}
}

func TestRun_EmptyQueueClosesImmediately(t *testing.T) {
	results := collect(t, Run(nil, nil))
	if len(results) != 0 {
		t.Errorf("got %d results for empty queue, want 0", len(results))
	}
}
