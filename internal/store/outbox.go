package store

import (
	"database/sql"
	"time"
)

// QueueOutbox adds a confirmed message to the delivery outbox.
func (db *DB) QueueOutbox(e *OutboxEntry) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO outbox (msg_id, user, kind, address, subject, body, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'queued', ?, ?)`,
		e.MsgID, e.User, e.Kind, e.Address, e.Subject, e.Body, now, now)
	return err
}

// MarkOutboxSending updates an outbox entry to 'sending' status.
func (db *DB) MarkOutboxSending(msgID string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = 'sending', updated_at = ? WHERE msg_id = ?`, now, msgID)
	return err
}

// MarkOutboxSent updates an outbox entry to 'sent' with the provider message ID.
func (db *DB) MarkOutboxSent(msgID, providerMsgID string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = 'sent', provider_msg_id = ?, updated_at = ? WHERE msg_id = ?`, providerMsgID, now, msgID)
	return err
}

// MarkOutboxFailed updates an outbox entry to 'failed' with an error message.
func (db *DB) MarkOutboxFailed(msgID, errMsg string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = 'failed', error_message = ?, updated_at = ? WHERE msg_id = ?`, errMsg, now, msgID)
	return err
}

// PendingOutbox returns outbox entries that are still queued.
func (db *DB) PendingOutbox() ([]OutboxEntry, error) {
	rows, err := db.Query(`
		SELECT id, msg_id, user, kind, address, subject, body, status, error_message, provider_msg_id
		FROM outbox WHERE status = 'queued' ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []OutboxEntry
	for rows.Next() {
		var e OutboxEntry
		if err := rows.Scan(&e.ID, &e.MsgID, &e.User, &e.Kind, &e.Address, &e.Subject, &e.Body, &e.Status, &e.ErrorMessage, &e.ProviderMsgID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetOutboxEntry returns one outbox entry by message ID, or nil.
func (db *DB) GetOutboxEntry(msgID string) (*OutboxEntry, error) {
	var e OutboxEntry
	err := db.QueryRow(`
		SELECT id, msg_id, user, kind, address, subject, body, status, error_message, provider_msg_id
		FROM outbox WHERE msg_id = ?`, msgID).
		Scan(&e.ID, &e.MsgID, &e.User, &e.Kind, &e.Address, &e.Subject, &e.Body, &e.Status, &e.ErrorMessage, &e.ProviderMsgID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
