package state

import "time"

// GetDurations returns the cached track durations, keyed by file name
// without extension.
func (m *Manager) GetDurations() (map[string]time.Duration, error) {
	rows, err := m.db.Query(`SELECT name, duration_ms FROM track_durations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	durations := make(map[string]time.Duration)
	for rows.Next() {
		var name string
		var ms int64
		if err := rows.Scan(&name, &ms); err != nil {
			return nil, err
		}
		durations[name] = time.Duration(ms) * time.Millisecond
	}

	return durations, rows.Err()
}

// SaveDurations upserts the given durations in a single transaction.
// Entries for tracks not in the map are kept: the cache spans folders.
func (m *Manager) SaveDurations(durations map[string]time.Duration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.Prepare(`
		INSERT INTO track_durations (name, duration_ms)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET duration_ms = excluded.duration_ms
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for name, d := range durations {
		if _, err := stmt.Exec(name, d.Milliseconds()); err != nil {
			return err
		}
	}

	return tx.Commit()
}
