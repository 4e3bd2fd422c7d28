package state

import (
	"database/sql"
	"errors"
)

// Session is the snapshot restored on the next start: the folder that was
// playing and the volume it was playing at.
type Session struct {
	Folder string
	Volume float64
}

// GetSession returns the saved session, or nil when none has been saved yet.
func (m *Manager) GetSession() (*Session, error) {
	row := m.db.QueryRow(`SELECT folder, volume FROM session WHERE id = 1`)

	var s Session
	err := row.Scan(&s.Folder, &s.Volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveSession persists the session, replacing any previous one.
func (m *Manager) SaveSession(s Session) error {
	_, err := m.db.Exec(`
		INSERT INTO session (id, folder, volume)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			folder = excluded.folder,
			volume = excluded.volume
	`, s.Folder, s.Volume)
	return err
}
