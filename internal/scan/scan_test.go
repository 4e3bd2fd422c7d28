package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFolder(t *testing.T) {
	dir := t.TempDir()

	files := []string{"b.mp3", "a.flac", "notes.txt", "c.ogg", "d.wav", "image.jpg"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.mp3"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := Folder(dir)
	if err != nil {
		t.Fatalf("Folder failed: %v", err)
	}

	want := map[string]bool{"b.mp3": true, "a.flac": true, "c.ogg": true, "d.wav": true}
	if len(names) != len(want) {
		t.Fatalf("got %d names %v, want %d", len(names), names, len(want))
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected entry %q", name)
		}
	}
}

func TestFolder_Empty(t *testing.T) {
	names, err := Folder(t.TempDir())
	if err != nil {
		t.Fatalf("Folder failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("got %v, want empty", names)
	}
}

func TestFolder_MissingDir(t *testing.T) {
	if _, err := Folder("/nonexistent/music"); err == nil {
		t.Error("Folder on a missing directory must fail")
	}
}
