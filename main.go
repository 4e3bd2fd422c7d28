package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quaver/internal/bus"
	"quaver/internal/config"
	"quaver/internal/engine"
	"quaver/internal/errmsg"
	"quaver/internal/loader"
	"quaver/internal/runner"
	"quaver/internal/scan"
	"quaver/internal/state"
	"quaver/internal/track"
	"quaver/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpStateLoad, err))
	}
	defer stateMgr.Close()

	session, err := stateMgr.GetSession()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpStateLoad, err))
	}

	folder, err := pickFolder(cfg, session)
	if err != nil {
		return err
	}

	volume := 1.0
	if session != nil {
		volume = session.Volume
	}

	names, err := scan.Folder(folder)
	if err != nil {
		return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpFolderScan, folder, err))
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(folder, name)
	}

	eng := engine.New(paths)
	r := runner.New(eng, folder, names, volume)
	go r.Run()
	defer r.Close()

	tracks, known := seedTracks(stateMgr, names)
	results := loader.Run(paths, known)

	busDone := make(chan struct{})
	defer close(busDone)
	startBridge(r, busDone)

	model := ui.New(r, tracks, results,
		time.Duration(cfg.SeekStepSeconds)*time.Second, cfg.VolumeStep)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	saveState(stateMgr, r, folder, final)
	return nil
}

// pickFolder resolves the folder to play: argument, then saved session,
// then configured default, then the working directory.
func pickFolder(cfg *config.Config, session *state.Session) (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	if session != nil && session.Folder != "" {
		if _, err := os.Stat(session.Folder); err == nil {
			return session.Folder, nil
		}
	}
	if cfg.DefaultFolder != "" {
		return cfg.DefaultFolder, nil
	}
	return os.Getwd()
}

// seedTracks builds the initial track list and the per-index durations
// already known from previous runs, so the loader can skip probing them.
func seedTracks(stateMgr *state.Manager, names []string) ([]track.Track, map[int]time.Duration) {
	tracks := make([]track.Track, len(names))
	known := make(map[int]time.Duration)

	cached, err := stateMgr.GetDurations()
	if err != nil {
		cached = nil
	}

	for i, name := range names {
		tracks[i] = track.Track{Name: name}
		if d, ok := cached[track.NameWithoutExt(name)]; ok && d > 0 {
			tracks[i].Duration = d
			known[i] = d
		}
	}

	return tracks, known
}

// startBridge wires the desktop media bridge when available. Playback works
// without it, so failures only cost remote control.
func startBridge(r *runner.Runner, done <-chan struct{}) {
	adapter, err := bus.NewAdapter(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpBridgeStart, err))
		return
	}

	artPath := ""
	if f, err := os.CreateTemp("", "quaver-art-*.jpg"); err == nil {
		artPath = f.Name()
		f.Close()
	}

	br := bus.New(r, adapter, artPath, r.Snapshot())
	go func() {
		br.Run(done)
		adapter.Close()
		if artPath != "" {
			os.Remove(artPath)
		}
	}()
}

// saveState persists the session and whatever durations the loader found.
func saveState(stateMgr *state.Manager, r *runner.Runner, folder string, final tea.Model) {
	if err := stateMgr.SaveSession(state.Session{Folder: folder, Volume: r.Volume()}); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateSave, err))
		return
	}

	model, ok := final.(ui.Model)
	if !ok {
		return
	}
	durations := make(map[string]time.Duration)
	for _, t := range model.Tracks() {
		if t.Duration > 0 {
			durations[track.NameWithoutExt(t.Name)] = t.Duration
		}
	}
	if err := stateMgr.SaveDurations(durations); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateSave, err))
	}
}
