package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// FactRepo handles database operations for reviewable facts.
type FactRepo struct {
	db *sqlx.DB
}

// Insert persists a new fact.
func (r *FactRepo) Insert(ctx context.Context, f *Fact) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO facts (
			id, learner_id, skill, content, memory_strength, interval_days,
			repetitions, times_reviewed, last_recall_score, next_review_date,
			last_reviewed_at, created_at
		) VALUES (
			:id, :learner_id, :skill, :content, :memory_strength, :interval_days,
			:repetitions, :times_reviewed, :last_recall_score, :next_review_date,
			:last_reviewed_at, :created_at
		)`, f)
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}
	return nil
}

// UpdateState writes back the spaced-repetition state after a review.
// Identity columns are never touched; facts are superseded, not replaced.
func (r *FactRepo) UpdateState(ctx context.Context, f *Fact) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE facts SET
			memory_strength = :memory_strength,
			interval_days = :interval_days,
			repetitions = :repetitions,
			times_reviewed = :times_reviewed,
			last_recall_score = :last_recall_score,
			next_review_date = :next_review_date,
			last_reviewed_at = :last_reviewed_at
		WHERE id = :id`, f)
	if err != nil {
		return fmt.Errorf("update fact state: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("update fact state: fact %s not found", f.ID)
	}
	return nil
}

// Get returns a fact by ID, or nil if it doesn't exist.
func (r *FactRepo) Get(ctx context.Context, id string) (*Fact, error) {
	var f Fact
	err := r.db.GetContext(ctx, &f, `SELECT * FROM facts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fact: %w", err)
	}
	return &f, nil
}

// ByLearner returns all facts for a learner, oldest first.
func (r *FactRepo) ByLearner(ctx context.Context, learnerID string) ([]Fact, error) {
	var facts []Fact
	err := r.db.SelectContext(ctx, &facts,
		`SELECT * FROM facts WHERE learner_id = ? ORDER BY created_at ASC`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("facts by learner: %w", err)
	}
	return facts, nil
}

// Due returns facts at or past their review date, earliest due first.
func (r *FactRepo) Due(ctx context.Context, learnerID string, now time.Time) ([]Fact, error) {
	var facts []Fact
	err := r.db.SelectContext(ctx, &facts, `
		SELECT * FROM facts
		WHERE learner_id = ? AND next_review_date <= ?
		ORDER BY next_review_date ASC`, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("due facts: %w", err)
	}
	return facts, nil
}
