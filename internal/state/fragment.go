package state

import (
	"database/sql"
	"fmt"
	"time"
)

// Fragment is the last fragment written for a document.
type Fragment struct {
	Doc       string
	Hash      string
	UpdatedAt time.Time
}

// HistoryEntry is one navigable history entry of a document.
type HistoryEntry struct {
	ID        int64
	Doc       string
	Hash      string
	CreatedAt time.Time
}

// GetFragment returns the stored fragment of doc, or nil if none was stored.
func (db *DB) GetFragment(doc string) (*Fragment, error) {
	row := db.QueryRow(`SELECT doc, hash, updated_at FROM fragments WHERE doc = ?`, doc)

	var f Fragment
	var updatedAt string
	err := row.Scan(&f.Doc, &f.Hash, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fragment: %w", err)
	}

	f.UpdatedAt, _ = parseTime(updatedAt)
	return &f, nil
}

// AssignFragment stores hash for doc and appends a history entry.
func (db *DB) AssignFragment(doc, hash string) error {
	now := formatTime(time.Now())
	return db.Transaction(func(tx *sql.Tx) error {
		if err := upsertFragment(tx, doc, hash, now); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO fragment_history (doc, hash, created_at) VALUES (?, ?, ?)`,
			doc, hash, now); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
}

// ReplaceFragment stores hash for doc and rewrites its latest history
// entry, creating one if the document has no history yet.
func (db *DB) ReplaceFragment(doc, hash string) error {
	now := formatTime(time.Now())
	return db.Transaction(func(tx *sql.Tx) error {
		if err := upsertFragment(tx, doc, hash, now); err != nil {
			return err
		}

		res, err := tx.Exec(`
			UPDATE fragment_history SET hash = ?
			WHERE id = (SELECT MAX(id) FROM fragment_history WHERE doc = ?)
		`, hash, doc)
		if err != nil {
			return fmt.Errorf("replace history: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
		if _, err := tx.Exec(`INSERT INTO fragment_history (doc, hash, created_at) VALUES (?, ?, ?)`,
			doc, hash, now); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
}

func upsertFragment(tx *sql.Tx, doc, hash, now string) error {
	_, err := tx.Exec(`
		INSERT INTO fragments (doc, hash, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(doc) DO UPDATE SET hash = excluded.hash, updated_at = excluded.updated_at
	`, doc, hash, now)
	if err != nil {
		return fmt.Errorf("store fragment: %w", err)
	}
	return nil
}

// ListHistory returns the newest history entries of doc, oldest first.
// A limit of zero or less returns every entry.
func (db *DB) ListHistory(doc string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
		SELECT id, doc, hash, created_at FROM (
			SELECT id, doc, hash, created_at FROM fragment_history
			WHERE doc = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`, doc, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Doc, &e.Hash, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.CreatedAt, _ = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearFragment forgets the fragment and history of doc.
func (db *DB) ClearFragment(doc string) error {
	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM fragments WHERE doc = ?`, doc); err != nil {
			return fmt.Errorf("clear fragment: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM fragment_history WHERE doc = ?`, doc); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		return nil
	})
}
