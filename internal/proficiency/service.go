package proficiency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/store"
)

// Reassessment cadence and acceptance parameters.
const (
	// ReassessEvery triggers a reassessment on every Nth lesson completion.
	ReassessEvery = 10

	// ConfidenceGate is the minimum confidence for a determination to
	// become the active tier. Below it the record is history only.
	ConfidenceGate = 0.6

	// evidenceWindow bounds how much recent history goes into the prompt.
	evidenceWindow = 10
)

// Assessment is one per-skill tier determination returned by the model.
type Assessment struct {
	Skill         string  `json:"skill"`
	Level         string  `json:"level"`
	Confidence    float64 `json:"confidence"`
	Trajectory    string  `json:"trajectory"`
	Justification string  `json:"justification"`
}

type reassessmentOutput struct {
	Assessments []Assessment `json:"assessments"`
}

// Outcome summarizes one reassessment run.
type Outcome struct {
	Records  []store.ProficiencyRecord
	Accepted int
}

// Service runs trajectory-aware proficiency reassessments. Every
// determination is appended to the history; only those that clear the
// confidence gate and name a different tier than the active one are
// marked accepted, which moves the derived active tier.
type Service struct {
	store    *store.Store
	provider llm.Provider
	timeout  time.Duration
	now      func() time.Time
}

// NewService builds a reassessment service.
func NewService(st *store.Store, provider llm.Provider) *Service {
	return &Service{store: st, provider: provider, timeout: llm.DefaultTimeout, now: time.Now}
}

// ShouldReassess reports whether the given lifetime lesson count lands on
// the reassessment cadence.
func ShouldReassess(lessonCount int) bool {
	return lessonCount > 0 && lessonCount%ReassessEvery == 0
}

// Reassess gathers the learner's recent evidence, asks the model for
// per-skill tier determinations, and appends them to the history.
func (s *Service) Reassess(ctx context.Context, learnerID string) (*Outcome, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("reassessment needs an LLM provider")
	}
	ctx = llm.WithPurpose(ctx, llm.UseCaseReassessment)

	data, err := s.gatherEvidence(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if len(data.Lessons) == 0 && len(data.QuizScores) == 0 {
		return &Outcome{}, nil
	}

	userMsg, err := buildReassessmentMessage(data)
	if err != nil {
		return nil, fmt.Errorf("build reassessment prompt: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tuning := llm.TuningFor(llm.UseCaseReassessment)
	resp, err := s.provider.Generate(genCtx, llm.Request{
		System: reassessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReassessmentSchema,
		MaxTokens:   tuning.MaxTokens,
		Temperature: tuning.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("reassessment generation failed: %w", err)
	}

	var out reassessmentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reassessment response: %w", err)
	}

	return s.record(ctx, learnerID, out.Assessments, data.ActiveLevels)
}

func (s *Service) gatherEvidence(ctx context.Context, learnerID string) (promptData, error) {
	var data promptData

	lessons, err := s.store.Completions().RecentLessons(ctx, learnerID, evidenceWindow)
	if err != nil {
		return data, fmt.Errorf("load recent lessons: %w", err)
	}
	// RecentLessons returns newest first; the prompt wants oldest first.
	for i := len(lessons) - 1; i >= 0; i-- {
		l := lessons[i]
		data.Lessons = append(data.Lessons, lessonEntry{
			Topic:      l.Topic,
			Difficulty: l.Difficulty,
			Score:      l.Score,
			When:       l.CompletedAt.Format("2006-01-02"),
		})
	}

	data.QuizScores, err = s.store.QuizResults().RecentScores(ctx, learnerID, evidenceWindow)
	if err != nil {
		return data, fmt.Errorf("load quiz scores: %w", err)
	}

	data.ActiveLevels, err = s.store.Proficiency().ActiveLevels(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load active levels: %w", err)
	}

	history, err := s.store.Proficiency().RecentAccepted(ctx, learnerID, evidenceWindow)
	if err != nil {
		return data, fmt.Errorf("load tier history: %w", err)
	}
	for _, h := range history {
		data.TierHistory = append(data.TierHistory, historyEntry{
			Skill: h.Skill,
			Level: h.Level,
			When:  h.RecordedAt.Format("2006-01-02"),
		})
	}
	return data, nil
}

// record appends every determination, marking accepted only those that
// clear the gate and actually move the tier.
func (s *Service) record(ctx context.Context, learnerID string, assessments []Assessment, active map[string]string) (*Outcome, error) {
	now := s.now()
	outcome := &Outcome{}

	for _, a := range assessments {
		if !skill.Valid(skill.Skill(a.Skill)) {
			continue
		}
		if !Level(a.Level).Valid() {
			continue
		}

		accepted := a.Confidence >= ConfidenceGate && active[a.Skill] != a.Level

		rec := store.ProficiencyRecord{
			LearnerID:  learnerID,
			Skill:      a.Skill,
			Level:      a.Level,
			Confidence: a.Confidence,
			Source:     store.SourceReassessment,
			Trajectory: a.Trajectory,
			Rationale:  a.Justification,
			Accepted:   accepted,
			RecordedAt: now,
		}
		if err := s.store.Proficiency().Append(ctx, &rec); err != nil {
			return outcome, fmt.Errorf("append determination for %s: %w", a.Skill, err)
		}
		outcome.Records = append(outcome.Records, rec)
		if accepted {
			outcome.Accepted++
		}
	}
	return outcome, nil
}
