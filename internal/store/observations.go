package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ObservationRepo handles database operations for modality observations.
type ObservationRepo struct {
	db *sqlx.DB
}

// Append records one scored observation.
func (r *ObservationRepo) Append(ctx context.Context, o *Observation) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO observations (learner_id, skill, score, source, observed_at)
		VALUES (:learner_id, :skill, :score, :source, :observed_at)`, o)
	if err != nil {
		return fmt.Errorf("append observation: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		o.ID = id
	}
	return nil
}

// ByLearner returns all observations for a learner in chronological order.
func (r *ObservationRepo) ByLearner(ctx context.Context, learnerID string) ([]Observation, error) {
	var out []Observation
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM observations WHERE learner_id = ? ORDER BY observed_at ASC, id ASC`,
		learnerID)
	if err != nil {
		return nil, fmt.Errorf("observations by learner: %w", err)
	}
	return out, nil
}
