package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ArtifactRepo handles lesson and quiz artifacts. Inserts go through an
// insert-if-absent on the unique session_id so at most one artifact of
// each kind exists per session even under concurrent confirmation.
type ArtifactRepo struct {
	db *sqlx.DB
}

// InsertLessonIfAbsent inserts the lesson artifact unless one already
// exists for the session. Returns the stored artifact and whether it
// already existed.
func (r *ArtifactRepo) InsertLessonIfAbsent(ctx context.Context, a *LessonArtifact) (*LessonArtifact, bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO lesson_artifacts (
			id, learner_id, session_id, title, objective, topics, body, created_at
		) VALUES (
			:id, :learner_id, :session_id, :title, :objective, :topics, :body, :created_at
		) ON CONFLICT(session_id) DO NOTHING`, a)
	if err != nil {
		return nil, false, fmt.Errorf("insert lesson artifact: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("insert lesson artifact: %w", err)
	}
	if n > 0 {
		return a, false, nil
	}

	existing, err := r.LessonBySession(ctx, a.SessionID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("lesson artifact for session %s vanished", a.SessionID)
	}
	return existing, true, nil
}

// LessonBySession returns the lesson artifact for a session, or nil.
func (r *ArtifactRepo) LessonBySession(ctx context.Context, sessionID string) (*LessonArtifact, error) {
	var a LessonArtifact
	err := r.db.GetContext(ctx, &a,
		`SELECT * FROM lesson_artifacts WHERE session_id = ?`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lesson by session: %w", err)
	}
	return &a, nil
}

// InsertQuizIfAbsent inserts the quiz artifact unless one already exists
// for the session.
func (r *ArtifactRepo) InsertQuizIfAbsent(ctx context.Context, q *QuizArtifact) (*QuizArtifact, bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO quiz_artifacts (id, learner_id, session_id, lesson_id, body, created_at)
		VALUES (:id, :learner_id, :session_id, :lesson_id, :body, :created_at)
		ON CONFLICT(session_id) DO NOTHING`, q)
	if err != nil {
		return nil, false, fmt.Errorf("insert quiz artifact: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("insert quiz artifact: %w", err)
	}
	if n > 0 {
		return q, false, nil
	}

	existing, err := r.QuizBySession(ctx, q.SessionID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("quiz artifact for session %s vanished", q.SessionID)
	}
	return existing, true, nil
}

// QuizBySession returns the quiz artifact for a session, or nil.
func (r *ArtifactRepo) QuizBySession(ctx context.Context, sessionID string) (*QuizArtifact, error) {
	var q QuizArtifact
	err := r.db.GetContext(ctx, &q,
		`SELECT * FROM quiz_artifacts WHERE session_id = ?`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("quiz by session: %w", err)
	}
	return &q, nil
}
