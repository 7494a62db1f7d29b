package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CompletionRepo handles database operations for completed activities.
type CompletionRepo struct {
	db *sqlx.DB
}

// Append records a completed activity.
func (r *CompletionRepo) Append(ctx context.Context, c *Completion) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO completions (
			id, learner_id, session_id, kind, topic, difficulty, score,
			struggled_with, completed_at
		) VALUES (
			:id, :learner_id, :session_id, :kind, :topic, :difficulty, :score,
			:struggled_with, :completed_at
		)`, c)
	if err != nil {
		return fmt.Errorf("append completion: %w", err)
	}
	return nil
}

// ByLearner returns all completions for a learner in chronological order.
func (r *CompletionRepo) ByLearner(ctx context.Context, learnerID string) ([]Completion, error) {
	var out []Completion
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM completions WHERE learner_id = ? ORDER BY completed_at ASC, id ASC`,
		learnerID)
	if err != nil {
		return nil, fmt.Errorf("completions by learner: %w", err)
	}
	return out, nil
}

// CountLessons returns the number of completed lesson activities. This is
// the counter the reassessment trigger runs on.
func (r *CompletionRepo) CountLessons(ctx context.Context, learnerID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM completions WHERE learner_id = ? AND kind = ?`,
		learnerID, KindLesson)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return n, nil
}

// RecentLessons returns the last n completed lessons, most recent first.
func (r *CompletionRepo) RecentLessons(ctx context.Context, learnerID string, n int) ([]Completion, error) {
	var out []Completion
	err := r.db.SelectContext(ctx, &out, `
		SELECT * FROM completions
		WHERE learner_id = ? AND kind = ?
		ORDER BY completed_at DESC, id DESC LIMIT ?`,
		learnerID, KindLesson, n)
	if err != nil {
		return nil, fmt.Errorf("recent lessons: %w", err)
	}
	return out, nil
}
