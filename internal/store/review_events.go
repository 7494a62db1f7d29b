package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ReviewEventRepo handles database operations for review events.
type ReviewEventRepo struct {
	db *sqlx.DB
}

// Append records one recall attempt. Events are immutable once written.
func (r *ReviewEventRepo) Append(ctx context.Context, e *ReviewEvent) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO review_events (fact_id, learner_id, score, quality, reviewed_at)
		VALUES (:fact_id, :learner_id, :score, :quality, :reviewed_at)`, e)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return nil
}

// ByLearner returns all review events for a learner in chronological order.
func (r *ReviewEventRepo) ByLearner(ctx context.Context, learnerID string) ([]ReviewEvent, error) {
	var events []ReviewEvent
	err := r.db.SelectContext(ctx, &events,
		`SELECT * FROM review_events WHERE learner_id = ? ORDER BY reviewed_at ASC, id ASC`,
		learnerID)
	if err != nil {
		return nil, fmt.Errorf("review events by learner: %w", err)
	}
	return events, nil
}

// CountByLearner returns the total number of recorded recall attempts.
func (r *ReviewEventRepo) CountByLearner(ctx context.Context, learnerID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM review_events WHERE learner_id = ?`, learnerID)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return n, nil
}
