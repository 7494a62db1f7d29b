package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a []string as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Fact is a persisted reviewable fact: one atomic unit of knowledge owned
// by one learner. The spaced-repetition columns mirror review.FactState.
type Fact struct {
	ID              string     `db:"id"`
	LearnerID       string     `db:"learner_id"`
	Skill           string     `db:"skill"`
	Content         string     `db:"content"`
	MemoryStrength  float64    `db:"memory_strength"`
	IntervalDays    int        `db:"interval_days"`
	Repetitions     int        `db:"repetitions"`
	TimesReviewed   int        `db:"times_reviewed"`
	LastRecallScore *int       `db:"last_recall_score"`
	NextReviewDate  time.Time  `db:"next_review_date"`
	LastReviewedAt  *time.Time `db:"last_reviewed_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

// ReviewEvent is one scored recall attempt against a fact. Immutable.
type ReviewEvent struct {
	ID         int64     `db:"id"`
	FactID     string    `db:"fact_id"`
	LearnerID  string    `db:"learner_id"`
	Score      int       `db:"score"`
	Quality    int       `db:"quality"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

// Completion is a finished learning activity (lesson, game, or challenge).
type Completion struct {
	ID            string     `db:"id"`
	LearnerID     string     `db:"learner_id"`
	SessionID     *string    `db:"session_id"`
	Kind          string     `db:"kind"`
	Topic         string     `db:"topic"`
	Difficulty    string     `db:"difficulty"`
	Score         float64    `db:"score"`
	StruggledWith StringList `db:"struggled_with"`
	CompletedAt   time.Time  `db:"completed_at"`
}

// Completion kinds.
const (
	KindLesson    = "lesson"
	KindGame      = "game"
	KindChallenge = "challenge"
)

// Observation is a teacher- or system-scored observation of one modality.
type Observation struct {
	ID         int64     `db:"id"`
	LearnerID  string    `db:"learner_id"`
	Skill      string    `db:"skill"`
	Score      float64   `db:"score"`
	Source     string    `db:"source"`
	ObservedAt time.Time `db:"observed_at"`
}

// ProfileSnapshot is one immutable, versioned learner-profile aggregate.
// Data holds the profile JSON; the profile package owns its shape.
type ProfileSnapshot struct {
	ID         string    `db:"id"`
	LearnerID  string    `db:"learner_id"`
	Version    int       `db:"version"`
	Data       string    `db:"data"`
	ComputedAt time.Time `db:"computed_at"`
}

// ProficiencyRecord is one append-only tier determination for a sub-skill.
// Accepted marks entries that cleared the confidence gate; the learner's
// active tier is derived as the latest accepted record per skill.
type ProficiencyRecord struct {
	ID         int64     `db:"id"`
	LearnerID  string    `db:"learner_id"`
	Skill      string    `db:"skill"`
	Level      string    `db:"level"`
	Confidence float64   `db:"confidence"`
	Source     string    `db:"source"`
	Trajectory string    `db:"trajectory"`
	Rationale  string    `db:"rationale"`
	Accepted   bool      `db:"accepted"`
	RecordedAt time.Time `db:"recorded_at"`
}

// Proficiency record sources.
const (
	SourceInitialAssessment = "initial_assessment"
	SourceReassessment      = "periodic_reassessment"
)

// LessonArtifact is the generated lesson for a confirmed session.
// At most one exists per session (unique session_id).
type LessonArtifact struct {
	ID        string     `db:"id"`
	LearnerID string     `db:"learner_id"`
	SessionID string     `db:"session_id"`
	Title     string     `db:"title"`
	Objective string     `db:"objective"`
	Topics    StringList `db:"topics"`
	Body      string     `db:"body"`
	CreatedAt time.Time  `db:"created_at"`
}

// QuizArtifact is the generated follow-up quiz derived from a session's
// lesson artifact. At most one exists per session.
type QuizArtifact struct {
	ID        string    `db:"id"`
	LearnerID string    `db:"learner_id"`
	SessionID string    `db:"session_id"`
	LessonID  string    `db:"lesson_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// PlanVersion is one immutable version of a learner's personalized plan.
type PlanVersion struct {
	ID        string    `db:"id"`
	LearnerID string    `db:"learner_id"`
	Version   int       `db:"version"`
	Summary   string    `db:"summary"`
	Body      string    `db:"body"`
	Trigger   string    `db:"trigger_reason"`
	CreatedAt time.Time `db:"created_at"`
}

// QuizResult is one submitted quiz with per-item outcomes.
type QuizResult struct {
	ID          string    `db:"id"`
	LearnerID   string    `db:"learner_id"`
	SessionID   *string   `db:"session_id"`
	Score       float64   `db:"score"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// QuizItemResult is the outcome of one quiz question.
type QuizItemResult struct {
	ID       int64  `db:"id"`
	ResultID string `db:"result_id"`
	Skill    string `db:"skill"`
	Correct  bool   `db:"correct"`
	Mistake  string `db:"mistake"`
}

// Note is a teacher-authored note about a learner.
type Note struct {
	ID        int64     `db:"id"`
	LearnerID string    `db:"learner_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
