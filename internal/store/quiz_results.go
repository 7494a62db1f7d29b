package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// QuizResultRepo handles submitted quizzes and their per-item outcomes.
type QuizResultRepo struct {
	db *sqlx.DB
}

// Append persists a quiz result together with its item outcomes.
func (r *QuizResultRepo) Append(ctx context.Context, result *QuizResult, items []QuizItemResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO quiz_results (id, learner_id, session_id, score, submitted_at)
		VALUES (:id, :learner_id, :session_id, :score, :submitted_at)`, result)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}

	for i := range items {
		items[i].ResultID = result.ID
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO quiz_item_results (result_id, skill, correct, mistake)
			VALUES (:result_id, :skill, :correct, :mistake)`, &items[i])
		if err != nil {
			return fmt.Errorf("insert quiz item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecentScores returns the scores of the last n quizzes in chronological
// order (oldest of the n first). Trend-sensitive callers depend on the
// ordering.
func (r *QuizResultRepo) RecentScores(ctx context.Context, learnerID string, n int) ([]float64, error) {
	var scores []float64
	err := r.db.SelectContext(ctx, &scores, `
		SELECT score FROM (
			SELECT score, submitted_at, id FROM quiz_results
			WHERE learner_id = ?
			ORDER BY submitted_at DESC, id DESC LIMIT ?
		) ORDER BY submitted_at ASC, id ASC`,
		learnerID, n)
	if err != nil {
		return nil, fmt.Errorf("recent quiz scores: %w", err)
	}
	return scores, nil
}

// SkillAccuracy aggregates per-skill item accuracy over the learner's
// last n quiz results.
func (r *QuizResultRepo) SkillAccuracy(ctx context.Context, learnerID string, n int) (map[string]float64, error) {
	var rows []struct {
		Skill    string  `db:"skill"`
		Accuracy float64 `db:"accuracy"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT i.skill, AVG(CASE WHEN i.correct THEN 1.0 ELSE 0.0 END) AS accuracy
		FROM quiz_item_results i
		WHERE i.result_id IN (
			SELECT id FROM quiz_results
			WHERE learner_id = ?
			ORDER BY submitted_at DESC, id DESC LIMIT ?
		)
		GROUP BY i.skill`,
		learnerID, n)
	if err != nil {
		return nil, fmt.Errorf("skill accuracy: %w", err)
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Skill] = row.Accuracy
	}
	return out, nil
}

// RecentMistakes returns incorrect items from the learner's last n quiz
// results, most recent first.
func (r *QuizResultRepo) RecentMistakes(ctx context.Context, learnerID string, n int) ([]QuizItemResult, error) {
	var items []QuizItemResult
	err := r.db.SelectContext(ctx, &items, `
		SELECT i.* FROM quiz_item_results i
		WHERE i.correct = 0 AND i.result_id IN (
			SELECT id FROM quiz_results
			WHERE learner_id = ?
			ORDER BY submitted_at DESC, id DESC LIMIT ?
		)
		ORDER BY i.id DESC`,
		learnerID, n)
	if err != nil {
		return nil, fmt.Errorf("recent mistakes: %w", err)
	}
	return items, nil
}
