package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ProficiencyRepo handles the append-only tier-determination history.
// There is no mutable "current tier" column: the active tier is the
// derived projection exposed by ActiveLevel/ActiveLevels.
type ProficiencyRepo struct {
	db *sqlx.DB
}

// Append records one tier determination.
func (r *ProficiencyRepo) Append(ctx context.Context, rec *ProficiencyRecord) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO proficiency_records (
			learner_id, skill, level, confidence, source, trajectory,
			rationale, accepted, recorded_at
		) VALUES (
			:learner_id, :skill, :level, :confidence, :source, :trajectory,
			:rationale, :accepted, :recorded_at
		)`, rec)
	if err != nil {
		return fmt.Errorf("append proficiency record: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// LastN returns the most recent n records for a skill in chronological
// order (oldest of the n first).
func (r *ProficiencyRepo) LastN(ctx context.Context, learnerID, skill string, n int) ([]ProficiencyRecord, error) {
	var recs []ProficiencyRecord
	err := r.db.SelectContext(ctx, &recs, `
		SELECT * FROM (
			SELECT * FROM proficiency_records
			WHERE learner_id = ? AND skill = ?
			ORDER BY recorded_at DESC, id DESC LIMIT ?
		) ORDER BY recorded_at ASC, id ASC`,
		learnerID, skill, n)
	if err != nil {
		return nil, fmt.Errorf("proficiency history: %w", err)
	}
	return recs, nil
}

// RecentAccepted returns the most recent n accepted records across all
// skills, oldest first.
func (r *ProficiencyRepo) RecentAccepted(ctx context.Context, learnerID string, n int) ([]ProficiencyRecord, error) {
	var recs []ProficiencyRecord
	err := r.db.SelectContext(ctx, &recs, `
		SELECT * FROM (
			SELECT * FROM proficiency_records
			WHERE learner_id = ? AND accepted = 1
			ORDER BY recorded_at DESC, id DESC LIMIT ?
		) ORDER BY recorded_at ASC, id ASC`,
		learnerID, n)
	if err != nil {
		return nil, fmt.Errorf("accepted proficiency history: %w", err)
	}
	return recs, nil
}

// ActiveLevel returns the latest accepted level for a skill. The second
// return is false when no record has cleared the gate yet.
func (r *ProficiencyRepo) ActiveLevel(ctx context.Context, learnerID, skill string) (string, bool, error) {
	var level string
	err := r.db.GetContext(ctx, &level, `
		SELECT level FROM proficiency_records
		WHERE learner_id = ? AND skill = ? AND accepted = 1
		ORDER BY recorded_at DESC, id DESC LIMIT 1`,
		learnerID, skill)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("active level: %w", err)
	}
	return level, true, nil
}

// ActiveLevels returns the derived active tier per skill.
func (r *ProficiencyRepo) ActiveLevels(ctx context.Context, learnerID string) (map[string]string, error) {
	var rows []struct {
		Skill string `db:"skill"`
		Level string `db:"level"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.skill, p.level FROM proficiency_records p
		JOIN (
			SELECT skill, MAX(id) AS max_id FROM proficiency_records
			WHERE learner_id = ? AND accepted = 1
			GROUP BY skill
		) latest ON latest.max_id = p.id`,
		learnerID)
	if err != nil {
		return nil, fmt.Errorf("active levels: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Skill] = row.Level
	}
	return out, nil
}
