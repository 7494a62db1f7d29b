package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/store"
)

// Sub-skills scoring below this recent quiz accuracy are surfaced to the
// lesson prompt for reinforcement.
const weakAccuracyBelow = 0.6

const recentTopicWindow = 5

// Orchestrator generates the two per-session artifacts: the lesson for a
// confirmed session, then the follow-up quiz derived from it. Both stages
// are idempotent per session and fail soft: a failed stage lands in the
// report instead of bubbling up, and the quiz stage never runs without a
// completed lesson.
type Orchestrator struct {
	store        *store.Store
	provider     llm.Provider
	stageTimeout time.Duration
	now          func() time.Time
}

// NewOrchestrator builds a session artifact orchestrator.
func NewOrchestrator(st *store.Store, provider llm.Provider) *Orchestrator {
	return &Orchestrator{
		store:        st,
		provider:     provider,
		stageTimeout: StageTimeout,
		now:          time.Now,
	}
}

// Generate runs both stages for a session. Calling it again for the same
// session is safe: stages satisfied by an existing artifact complete
// immediately with AlreadyExisted set.
func (o *Orchestrator) Generate(ctx context.Context, learnerID, sessionID string) Report {
	rep := Report{SessionID: sessionID}

	lesson, lessonRes := o.lessonStage(ctx, learnerID, sessionID)
	rep.Lesson = lessonRes
	if lessonRes.Status != StatusCompleted {
		rep.Quiz = StageResult{Status: StatusSkipped}
		return rep
	}

	rep.Quiz = o.quizStage(ctx, learnerID, sessionID, lesson)
	return rep
}

func (o *Orchestrator) lessonStage(ctx context.Context, learnerID, sessionID string) (*store.LessonArtifact, StageResult) {
	existing, err := o.store.Artifacts().LessonBySession(ctx, sessionID)
	if err != nil {
		return nil, StageResult{Status: StatusFailed, Err: err}
	}
	if existing != nil {
		return existing, StageResult{Status: StatusCompleted, AlreadyExisted: true}
	}

	data, err := o.gatherLessonContext(ctx, learnerID)
	if err != nil {
		return nil, StageResult{Status: StatusFailed, Err: err}
	}
	userMsg, err := buildLessonMessage(data)
	if err != nil {
		return nil, StageResult{Status: StatusFailed, Err: fmt.Errorf("build lesson prompt: %w", err)}
	}

	stageCtx, cancel := context.WithTimeout(llm.WithPurpose(ctx, llm.UseCaseLesson), o.stageTimeout)
	defer cancel()

	tuning := llm.TuningFor(llm.UseCaseLesson)
	resp, err := o.provider.Generate(stageCtx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      LessonSchema,
		MaxTokens:   tuning.MaxTokens,
		Temperature: tuning.Temperature,
	})
	if err != nil {
		return nil, StageResult{Status: StatusFailed, Err: fmt.Errorf("lesson generation: %w", err)}
	}

	var lesson Lesson
	if err := json.Unmarshal(resp.Content, &lesson); err != nil {
		return nil, StageResult{Status: StatusFailed, Err: fmt.Errorf("parse lesson response: %w", err)}
	}

	art := &store.LessonArtifact{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		SessionID: sessionID,
		Title:     lesson.Title,
		Objective: lesson.Objective,
		Topics:    store.StringList(lesson.Topics),
		Body:      lesson.Body,
		CreatedAt: o.now(),
	}
	persisted, alreadyExisted, err := o.store.Artifacts().InsertLessonIfAbsent(ctx, art)
	if err != nil {
		return nil, StageResult{Status: StatusFailed, Err: err}
	}
	return persisted, StageResult{Status: StatusCompleted, AlreadyExisted: alreadyExisted}
}

func (o *Orchestrator) quizStage(ctx context.Context, learnerID, sessionID string, lesson *store.LessonArtifact) StageResult {
	existing, err := o.store.Artifacts().QuizBySession(ctx, sessionID)
	if err != nil {
		return StageResult{Status: StatusFailed, Err: err}
	}
	if existing != nil {
		return StageResult{Status: StatusCompleted, AlreadyExisted: true}
	}

	userMsg, err := buildQuizMessage(quizPromptData{
		LessonTitle: lesson.Title,
		LessonBody:  lesson.Body,
	})
	if err != nil {
		return StageResult{Status: StatusFailed, Err: fmt.Errorf("build quiz prompt: %w", err)}
	}

	stageCtx, cancel := context.WithTimeout(llm.WithPurpose(ctx, llm.UseCaseQuiz), o.stageTimeout)
	defer cancel()

	tuning := llm.TuningFor(llm.UseCaseQuiz)
	resp, err := o.provider.Generate(stageCtx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuizSchema,
		MaxTokens:   tuning.MaxTokens,
		Temperature: tuning.Temperature,
	})
	if err != nil {
		return StageResult{Status: StatusFailed, Err: fmt.Errorf("quiz generation: %w", err)}
	}

	var quiz Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return StageResult{Status: StatusFailed, Err: fmt.Errorf("parse quiz response: %w", err)}
	}

	art := &store.QuizArtifact{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		SessionID: sessionID,
		LessonID:  lesson.ID,
		Body:      string(resp.Content),
		CreatedAt: o.now(),
	}
	_, alreadyExisted, err := o.store.Artifacts().InsertQuizIfAbsent(ctx, art)
	if err != nil {
		return StageResult{Status: StatusFailed, Err: err}
	}
	return StageResult{Status: StatusCompleted, AlreadyExisted: alreadyExisted}
}

func (o *Orchestrator) gatherLessonContext(ctx context.Context, learnerID string) (lessonPromptData, error) {
	var data lessonPromptData

	plan, err := o.store.Plans().Latest(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load plan: %w", err)
	}
	if plan != nil {
		data.PlanSummary = plan.Summary
	}

	data.ActiveLevels, err = o.store.Proficiency().ActiveLevels(ctx, learnerID)
	if err != nil {
		return data, fmt.Errorf("load active levels: %w", err)
	}

	recent, err := o.store.Completions().RecentLessons(ctx, learnerID, recentTopicWindow)
	if err != nil {
		return data, fmt.Errorf("load recent lessons: %w", err)
	}
	for _, c := range recent {
		data.RecentTopics = append(data.RecentTopics, c.Topic)
	}

	accuracy, err := o.store.QuizResults().SkillAccuracy(ctx, learnerID, recentTopicWindow)
	if err != nil {
		return data, fmt.Errorf("load quiz accuracy: %w", err)
	}
	for sk, acc := range accuracy {
		if acc < weakAccuracyBelow {
			data.WeakSkills = append(data.WeakSkills, sk)
		}
	}
	sort.Strings(data.WeakSkills)

	return data, nil
}
