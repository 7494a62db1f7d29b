package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PlanRepo handles the append-only plan version history.
type PlanRepo struct {
	db *sqlx.DB
}

// Insert persists a new plan version, assigning version = max existing + 1
// for the learner. The assigned version is written back to p.Version.
// Prior versions are never touched.
func (r *PlanRepo) Insert(ctx context.Context, p *PlanVersion) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var version int
	err = tx.GetContext(ctx, &version,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM plan_versions WHERE learner_id = ?`,
		p.LearnerID)
	if err != nil {
		return fmt.Errorf("next plan version: %w", err)
	}
	p.Version = version

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO plan_versions (id, learner_id, version, summary, body, trigger_reason, created_at)
		VALUES (:id, :learner_id, :version, :summary, :body, :trigger_reason, :created_at)`, p)
	if err != nil {
		return fmt.Errorf("insert plan version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Latest returns the most recent plan version, or nil if none exist.
func (r *PlanRepo) Latest(ctx context.Context, learnerID string) (*PlanVersion, error) {
	var p PlanVersion
	err := r.db.GetContext(ctx, &p, `
		SELECT * FROM plan_versions
		WHERE learner_id = ? ORDER BY version DESC LIMIT 1`, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest plan: %w", err)
	}
	return &p, nil
}

// ByVersion returns one historical plan version, or nil.
func (r *PlanRepo) ByVersion(ctx context.Context, learnerID string, version int) (*PlanVersion, error) {
	var p PlanVersion
	err := r.db.GetContext(ctx, &p,
		`SELECT * FROM plan_versions WHERE learner_id = ? AND version = ?`,
		learnerID, version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan by version: %w", err)
	}
	return &p, nil
}

// All returns every plan version for a learner, oldest first.
func (r *PlanRepo) All(ctx context.Context, learnerID string) ([]PlanVersion, error) {
	var out []PlanVersion
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM plan_versions WHERE learner_id = ? ORDER BY version ASC`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("all plans: %w", err)
	}
	return out, nil
}
