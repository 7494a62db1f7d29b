package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/profile"
	"github.com/abhisek/lexio/internal/store"
)

// Revision triggers recorded on each plan version.
const (
	TriggerInitial    = "initial"
	TriggerTierChange = "tier_change"
	TriggerQuiz       = "quiz"
	TriggerNote       = "teacher_note"
	TriggerManual     = "manual"
)

const (
	recentTopicWindow = 5
	recentQuizWindow  = 5
	recentNoteWindow  = 3
)

// Result is the outcome of a successful plan revision.
type Result struct {
	Version     int
	Summary     string
	FocusSkills []string
}

type planOutput struct {
	Summary     string   `json:"summary"`
	FocusSkills []string `json:"focus_skills"`
	Body        string   `json:"body"`
}

// Service revises learning plans. Versions are immutable: every revision
// appends a new version and leaves the history intact.
type Service struct {
	store    *store.Store
	provider llm.Provider
	timeout  time.Duration
	now      func() time.Time
}

// NewService builds a plan service.
func NewService(st *store.Store, provider llm.Provider) *Service {
	return &Service{store: st, provider: provider, timeout: llm.DefaultTimeout, now: time.Now}
}

// Update generates the next plan version for a learner. On any failure no
// version is created and the previous plan stays current.
func (s *Service) Update(ctx context.Context, learnerID, trigger string) (*Result, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("plan revision needs an LLM provider")
	}
	ctx = llm.WithPurpose(ctx, llm.UseCasePlan)

	data, err := s.gatherContext(ctx, learnerID, trigger)
	if err != nil {
		return nil, err
	}
	userMsg, err := buildPlanMessage(data)
	if err != nil {
		return nil, fmt.Errorf("build plan prompt: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tuning := llm.TuningFor(llm.UseCasePlan)
	resp, err := s.provider.Generate(genCtx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PlanSchema,
		MaxTokens:   tuning.MaxTokens,
		Temperature: tuning.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	version := &store.PlanVersion{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		Summary:   out.Summary,
		Body:      out.Body,
		Trigger:   trigger,
		CreatedAt: s.now(),
	}
	if err := s.store.Plans().Insert(ctx, version); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	return &Result{
		Version:     version.Version,
		Summary:     out.Summary,
		FocusSkills: out.FocusSkills,
	}, nil
}

func (s *Service) gatherContext(ctx context.Context, learnerID, trigger string) (promptData, error) {
	data := promptData{Trigger: trigger}

	var err error
	data.ActiveLevels, err = s.store.Proficiency().ActiveLevels(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load active levels: %w", err)
	}

	prev, err := s.store.Plans().Latest(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load previous plan: %w", err)
	}
	if prev != nil {
		data.PreviousPlan = prev.Body
	}

	recent, err := s.store.Completions().RecentLessons(ctx, learnerID, recentTopicWindow)
	if err != nil {
		return data, fmt.Errorf("load recent lessons: %w", err)
	}
	for _, c := range recent {
		data.RecentTopics = append(data.RecentTopics, c.Topic)
	}

	accuracy, err := s.store.QuizResults().SkillAccuracy(ctx, learnerID, recentQuizWindow)
	if err != nil {
		return data, fmt.Errorf("load quiz accuracy: %w", err)
	}
	for _, sk := range slices.Sorted(maps.Keys(accuracy)) {
		data.QuizAccuracy = append(data.QuizAccuracy, fmt.Sprintf("%s: %.0f%% correct", sk, accuracy[sk]*100))
	}

	mistakes, err := s.store.QuizResults().RecentMistakes(ctx, learnerID, recentQuizWindow)
	if err != nil {
		return data, fmt.Errorf("load quiz mistakes: %w", err)
	}
	for _, m := range mistakes {
		line := m.Skill
		if m.Mistake != "" {
			line += ": " + m.Mistake
		}
		data.Mistakes = append(data.Mistakes, line)
	}

	notes, err := s.store.Notes().Recent(ctx, learnerID, recentNoteWindow)
	if err != nil {
		return data, fmt.Errorf("load notes: %w", err)
	}
	for _, n := range notes {
		author := n.Author
		if author == "" {
			author = "teacher"
		}
		data.Notes = append(data.Notes, fmt.Sprintf("%s (%s): %s", author, n.CreatedAt.Format("2006-01-02"), n.Body))
	}

	snap, err := s.store.Profiles().Latest(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load profile: %w", err)
	}
	if snap != nil {
		var p profile.Snapshot
		if err := json.Unmarshal([]byte(snap.Data), &p); err == nil {
			for _, ep := range p.ErrorPatterns {
				data.ErrorPatterns = append(data.ErrorPatterns, fmt.Sprintf("%s (%d times)", ep.Tag, ep.Count))
			}
		}
	}

	return data, nil
}
