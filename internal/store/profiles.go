package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ProfileRepo handles database operations for learner-profile snapshots.
type ProfileRepo struct {
	db *sqlx.DB
}

// Save persists a new immutable snapshot version for the learner and
// returns the assigned version number (max existing + 1).
func (r *ProfileRepo) Save(ctx context.Context, learnerID, data string, computedAt time.Time) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var version int
	err = tx.GetContext(ctx, &version,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM profile_snapshots WHERE learner_id = ?`,
		learnerID)
	if err != nil {
		return 0, fmt.Errorf("next profile version: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profile_snapshots (id, learner_id, version, data, computed_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), learnerID, version, data, computedAt)
	if err != nil {
		return 0, fmt.Errorf("insert profile snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return version, nil
}

// Latest returns the most recent snapshot, or nil if none exist.
func (r *ProfileRepo) Latest(ctx context.Context, learnerID string) (*ProfileSnapshot, error) {
	var snap ProfileSnapshot
	err := r.db.GetContext(ctx, &snap, `
		SELECT * FROM profile_snapshots
		WHERE learner_id = ? ORDER BY version DESC LIMIT 1`, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest profile snapshot: %w", err)
	}
	return &snap, nil
}
