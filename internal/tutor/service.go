package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/difficulty"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/plan"
	"github.com/abhisek/lexio/internal/proficiency"
	"github.com/abhisek/lexio/internal/profile"
	"github.com/abhisek/lexio/internal/review"
	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/store"
)

// ErrStaleReview rejects review submissions older than the fact's last
// recorded review. Reviews must arrive in chronological order per fact.
var ErrStaleReview = errors.New("review is older than the fact's last review")

// Service wires the core operations: fact reviews, lesson completions,
// and quiz submissions, each returning the side effects it queued.
type Service struct {
	store       *store.Store
	profiles    *profile.Service
	proficiency *proficiency.Service
	plans       *plan.Service
	now         func() time.Time
}

// NewService builds the tutor service and its sub-services.
func NewService(st *store.Store, provider llm.Provider) *Service {
	return &Service{
		store:       st,
		profiles:    profile.NewService(st),
		proficiency: proficiency.NewService(st, provider),
		plans:       plan.NewService(st, provider),
		now:         time.Now,
	}
}

// Profiles exposes the profile sub-service.
func (s *Service) Profiles() *profile.Service { return s.profiles }

// Plans exposes the plan sub-service.
func (s *Service) Plans() *plan.Service { return s.plans }

// AddFact registers a new reviewable fact, due immediately.
func (s *Service) AddFact(ctx context.Context, learnerID string, sk skill.Skill, content string) (*store.Fact, error) {
	if !skill.Valid(sk) {
		return nil, fmt.Errorf("unknown skill: %q", sk)
	}
	now := s.now()
	state := review.NewFactState(now)
	f := &store.Fact{
		ID:             uuid.NewString(),
		LearnerID:      learnerID,
		Skill:          string(sk),
		Content:        content,
		MemoryStrength: state.MemoryStrength,
		IntervalDays:   state.IntervalDays,
		NextReviewDate: state.NextReviewDate,
		CreatedAt:      now,
	}
	if err := s.store.Facts().Insert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ReviewOutcome is the result of one recorded recall attempt.
type ReviewOutcome struct {
	Fact    *store.Fact
	Quality int
	State   review.FactState
}

// ReviewFact scores one recall attempt and advances the fact's schedule.
func (s *Service) ReviewFact(ctx context.Context, factID string, score int) (*ReviewOutcome, error) {
	now := s.now()

	f, err := s.store.Facts().Get(ctx, factID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("fact %s not found", factID)
	}
	if f.LastReviewedAt != nil && now.Before(*f.LastReviewedAt) {
		return nil, ErrStaleReview
	}

	state := review.FactState{
		MemoryStrength:  f.MemoryStrength,
		IntervalDays:    f.IntervalDays,
		Repetitions:     f.Repetitions,
		TimesReviewed:   f.TimesReviewed,
		LastRecallScore: f.LastRecallScore,
		NextReviewDate:  f.NextReviewDate,
	}
	next := review.Apply(state, score, now)

	f.MemoryStrength = next.MemoryStrength
	f.IntervalDays = next.IntervalDays
	f.Repetitions = next.Repetitions
	f.TimesReviewed = next.TimesReviewed
	f.LastRecallScore = next.LastRecallScore
	f.NextReviewDate = next.NextReviewDate
	f.LastReviewedAt = &now
	if err := s.store.Facts().UpdateState(ctx, f); err != nil {
		return nil, err
	}

	event := &store.ReviewEvent{
		FactID:     f.ID,
		LearnerID:  f.LearnerID,
		Score:      score,
		Quality:    review.Quality(score),
		ReviewedAt: now,
	}
	if err := s.store.ReviewEvents().Append(ctx, event); err != nil {
		return nil, err
	}

	return &ReviewOutcome{Fact: f, Quality: event.Quality, State: next}, nil
}

// KnowledgePoint is one reviewable fact extracted from a lesson.
type KnowledgePoint struct {
	Skill   skill.Skill
	Content string
}

// CompletionInput describes one finished activity.
type CompletionInput struct {
	LearnerID       string
	SessionID       *string
	Kind            string
	Topic           string
	Difficulty      string
	Score           float64
	StruggledWith   []string
	KnowledgePoints []KnowledgePoint
}

// CompletionOutcome reports what a completion recorded and queued.
type CompletionOutcome struct {
	Completion  *store.Completion
	Facts       []*store.Fact
	LessonCount int
	Effects     []Effect
}

// CompleteLesson records a finished activity, extracts its knowledge
// points into reviewable facts, and queues its side effects: a profile
// recomputation always, and on every tenth lesson a proficiency
// reassessment that revises the plan when it moves a tier. The caller
// decides when to run the effects.
func (s *Service) CompleteLesson(ctx context.Context, in CompletionInput) (*CompletionOutcome, error) {
	if in.Kind == "" {
		in.Kind = store.KindLesson
	}
	for _, kp := range in.KnowledgePoints {
		if !skill.Valid(kp.Skill) {
			return nil, fmt.Errorf("unknown skill: %q", kp.Skill)
		}
	}

	c := &store.Completion{
		ID:            uuid.NewString(),
		LearnerID:     in.LearnerID,
		SessionID:     in.SessionID,
		Kind:          in.Kind,
		Topic:         in.Topic,
		Difficulty:    in.Difficulty,
		Score:         in.Score,
		StruggledWith: store.StringList(in.StruggledWith),
		CompletedAt:   s.now(),
	}
	if err := s.store.Completions().Append(ctx, c); err != nil {
		return nil, err
	}

	out := &CompletionOutcome{Completion: c}
	for _, kp := range in.KnowledgePoints {
		f, err := s.AddFact(ctx, in.LearnerID, kp.Skill, kp.Content)
		if err != nil {
			return nil, err
		}
		out.Facts = append(out.Facts, f)
	}
	out.Effects = append(out.Effects, s.profileEffect(in.LearnerID))

	if in.Kind == store.KindLesson {
		count, err := s.store.Completions().CountLessons(ctx, in.LearnerID)
		if err != nil {
			return nil, err
		}
		out.LessonCount = count
		if proficiency.ShouldReassess(count) {
			out.Effects = append(out.Effects, s.reassessEffect(in.LearnerID))
		}
	}
	return out, nil
}

// QuizItem is one answered quiz question.
type QuizItem struct {
	Skill   skill.Skill
	Correct bool
	Mistake string
}

// QuizInput describes one submitted quiz.
type QuizInput struct {
	LearnerID string
	SessionID *string
	Score     float64
	Items     []QuizItem
}

// QuizOutcome reports what a quiz submission recorded and queued.
type QuizOutcome struct {
	Result  *store.QuizResult
	Effects []Effect
}

// SubmitQuiz records a quiz result with its per-item outcomes and
// queues a profile recomputation followed by a plan revision, so the
// revision sees the refreshed profile.
func (s *Service) SubmitQuiz(ctx context.Context, in QuizInput) (*QuizOutcome, error) {
	result := &store.QuizResult{
		ID:          uuid.NewString(),
		LearnerID:   in.LearnerID,
		SessionID:   in.SessionID,
		Score:       in.Score,
		SubmittedAt: s.now(),
	}
	items := make([]store.QuizItemResult, len(in.Items))
	for i, it := range in.Items {
		items[i] = store.QuizItemResult{
			ResultID: result.ID,
			Skill:    string(it.Skill),
			Correct:  it.Correct,
			Mistake:  it.Mistake,
		}
	}
	if err := s.store.QuizResults().Append(ctx, result, items); err != nil {
		return nil, err
	}

	return &QuizOutcome{
		Result: result,
		Effects: []Effect{
			s.profileEffect(in.LearnerID),
			s.planEffect(in.LearnerID, plan.TriggerQuiz),
		},
	}, nil
}

// NoteInput is one teacher-authored note about a learner.
type NoteInput struct {
	LearnerID string
	Author    string
	Body      string
}

// NoteOutcome reports what a note recorded and queued.
type NoteOutcome struct {
	Note    *store.Note
	Effects []Effect
}

// AddNote records a teacher note and queues a plan revision, since
// teacher input is evidence the current plan may not reflect.
func (s *Service) AddNote(ctx context.Context, in NoteInput) (*NoteOutcome, error) {
	n := &store.Note{
		LearnerID: in.LearnerID,
		Author:    in.Author,
		Body:      in.Body,
		CreatedAt: s.now(),
	}
	if err := s.store.Notes().Append(ctx, n); err != nil {
		return nil, err
	}
	return &NoteOutcome{
		Note:    n,
		Effects: []Effect{s.planEffect(in.LearnerID, plan.TriggerNote)},
	}, nil
}

// Decisions classifies every skill's difficulty adjustment from the
// learner's current fact strengths.
func (s *Service) Decisions(ctx context.Context, learnerID string) (map[skill.Skill]difficulty.Decision, error) {
	facts, err := s.store.Facts().ByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	in := make([]difficulty.Fact, len(facts))
	for i, f := range facts {
		in[i] = difficulty.Fact{Skill: skill.Skill(f.Skill), MemoryStrength: f.MemoryStrength}
	}
	return difficulty.Classify(in), nil
}

func (s *Service) profileEffect(learnerID string) Effect {
	return Effect{
		Name: "profile-recompute",
		Run: func(ctx context.Context) error {
			_, err := s.profiles.Compute(ctx, learnerID)
			return err
		},
	}
}

func (s *Service) planEffect(learnerID, trigger string) Effect {
	return Effect{
		Name: "plan-revision",
		Run: func(ctx context.Context) error {
			_, err := s.plans.Update(ctx, learnerID, trigger)
			return err
		},
	}
}

func (s *Service) reassessEffect(learnerID string) Effect {
	return Effect{
		Name: "proficiency-reassessment",
		Run: func(ctx context.Context) error {
			outcome, err := s.proficiency.Reassess(ctx, learnerID)
			if err != nil {
				return err
			}
			if outcome.Accepted == 0 {
				return nil
			}
			// An accepted tier change makes the current plan stale.
			_, err = s.plans.Update(ctx, learnerID, plan.TriggerTierChange)
			return err
		},
	}
}
