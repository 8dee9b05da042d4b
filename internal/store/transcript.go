package store

// InsertTranscript archives a sent item.
func (db *DB) InsertTranscript(t *Transcript) error {
	_, err := db.Exec(`
		INSERT INTO transcripts (user, kind, address, preview, sent_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.User, t.Kind, t.Address, t.Preview, t.SentAt)
	return err
}

// ListTranscripts returns a user's sent items, newest first.
func (db *DB) ListTranscripts(user string, limit int) ([]Transcript, error) {
	rows, err := db.Query(`
		SELECT id, user, kind, address, preview, sent_at
		FROM transcripts WHERE user = ? ORDER BY sent_at DESC LIMIT ?`, user, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Transcript
	for rows.Next() {
		var t Transcript
		if err := rows.Scan(&t.ID, &t.User, &t.Kind, &t.Address, &t.Preview, &t.SentAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// TranscriptCount returns the total number of archived sent items.
func (db *DB) TranscriptCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM transcripts`).Scan(&count)
	return count, err
}
