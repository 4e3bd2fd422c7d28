package state

import (
	"testing"
	"time"
)

// setupTestManager creates an in-memory database with the schema initialized.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := OpenAt(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { m.Close() })

	return m
}

// TestGetSession_Empty tests getting the session from an empty database.
func TestGetSession_Empty(t *testing.T) {
	m := setupTestManager(t)

	s, err := m.GetSession()
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil session on empty db, got %+v", s)
	}
}

// TestSaveAndGetSession tests that a saved session is restored unchanged.
func TestSaveAndGetSession(t *testing.T) {
	m := setupTestManager(t)

	saved := Session{Folder: "/music/albums/one", Volume: 0.7}
	if err := m.SaveSession(saved); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := m.GetSession()
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved session, got nil")
	}
	if *got != saved {
		t.Errorf("session = %+v, want %+v", *got, saved)
	}
}

// TestSaveSession_Overwrite tests that saving replaces the previous session.
func TestSaveSession_Overwrite(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveSession(Session{Folder: "/old", Volume: 1.0}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if err := m.SaveSession(Session{Folder: "/new", Volume: 0.2}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := m.GetSession()
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Folder != "/new" || got.Volume != 0.2 {
		t.Errorf("session = %+v, want folder /new volume 0.2", *got)
	}
}

// TestDurations_RoundTrip tests that saved durations come back identical.
func TestDurations_RoundTrip(t *testing.T) {
	m := setupTestManager(t)

	saved := map[string]time.Duration{
		"01 - intro":   42 * time.Second,
		"02 - title":   3*time.Minute + 7*time.Second,
		"03 - outro":   0,
		"weird name ~": 1500 * time.Millisecond,
	}
	if err := m.SaveDurations(saved); err != nil {
		t.Fatalf("SaveDurations failed: %v", err)
	}

	got, err := m.GetDurations()
	if err != nil {
		t.Fatalf("GetDurations failed: %v", err)
	}
	if len(got) != len(saved) {
		t.Fatalf("got %d durations, want %d", len(got), len(saved))
	}
	for name, want := range saved {
		if got[name] != want {
			t.Errorf("duration[%q] = %v, want %v", name, got[name], want)
		}
	}
}

// TestDurations_MergeAcrossSaves tests that entries from earlier saves survive.
func TestDurations_MergeAcrossSaves(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveDurations(map[string]time.Duration{"a": time.Second}); err != nil {
		t.Fatalf("SaveDurations failed: %v", err)
	}
	if err := m.SaveDurations(map[string]time.Duration{"b": 2 * time.Second}); err != nil {
		t.Fatalf("SaveDurations failed: %v", err)
	}

	got, err := m.GetDurations()
	if err != nil {
		t.Fatalf("GetDurations failed: %v", err)
	}
	if got["a"] != time.Second || got["b"] != 2*time.Second {
		t.Errorf("durations = %v, want both a and b present", got)
	}
}
