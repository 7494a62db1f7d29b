package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// NoteRepo handles teacher-authored notes.
type NoteRepo struct {
	db *sqlx.DB
}

// Append records a note.
func (r *NoteRepo) Append(ctx context.Context, n *Note) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO notes (learner_id, author, body, created_at)
		VALUES (:learner_id, :author, :body, :created_at)`, n)
	if err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		n.ID = id
	}
	return nil
}

// Recent returns the last n notes, most recent first.
func (r *NoteRepo) Recent(ctx context.Context, learnerID string, n int) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes, `
		SELECT * FROM notes WHERE learner_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		learnerID, n)
	if err != nil {
		return nil, fmt.Errorf("recent notes: %w", err)
	}
	return notes, nil
}
