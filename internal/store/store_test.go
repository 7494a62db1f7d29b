package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFactLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	f := &Fact{
		ID:             uuid.NewString(),
		LearnerID:      "lisa",
		Skill:          "vocabulary",
		Content:        "la boulangerie = the bakery",
		MemoryStrength: 2.5,
		NextReviewDate: now,
		CreatedAt:      now,
	}
	require.NoError(t, s.Facts().Insert(ctx, f))

	got, err := s.Facts().Get(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "la boulangerie = the bakery", got.Content)

	got.MemoryStrength = 2.6
	got.IntervalDays = 1
	got.Repetitions = 1
	got.TimesReviewed = 1
	score := 90
	got.LastRecallScore = &score
	got.NextReviewDate = now.AddDate(0, 0, 1)
	reviewedAt := now
	got.LastReviewedAt = &reviewedAt
	require.NoError(t, s.Facts().UpdateState(ctx, got))

	due, err := s.Facts().Due(ctx, "lisa", now)
	require.NoError(t, err)
	assert.Empty(t, due, "fact pushed to tomorrow must not be due")

	due, err = s.Facts().Due(ctx, "lisa", now.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.NotNil(t, due[0].LastRecallScore)
	assert.Equal(t, 90, *due[0].LastRecallScore)
}

func TestFactUpdateStateMissingFact(t *testing.T) {
	s := newTestStore(t)
	err := s.Facts().UpdateState(context.Background(), &Fact{ID: "ghost"})
	require.Error(t, err)
}

func TestProfileSnapshotVersioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now()

	v1, err := s.Profiles().Save(ctx, "lisa", `{"a":1}`, now)
	require.NoError(t, err)
	v2, err := s.Profiles().Save(ctx, "lisa", `{"a":2}`, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, v1)
	assert.Equal(t, 2, v2)

	// Versions are per learner.
	other, err := s.Profiles().Save(ctx, "marc", `{}`, now)
	require.NoError(t, err)
	assert.Equal(t, 1, other)

	latest, err := s.Profiles().Latest(ctx, "lisa")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.Version)
	assert.JSONEq(t, `{"a":2}`, latest.Data)
}

func TestLessonArtifactInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := &LessonArtifact{
		ID:        uuid.NewString(),
		LearnerID: "lisa",
		SessionID: "session-1",
		Title:     "Ordering at a café",
		Topics:    StringList{"food-vocabulary"},
		Body:      "...",
		CreatedAt: time.Now(),
	}
	got, existed, err := s.Artifacts().InsertLessonIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, first.ID, got.ID)

	second := &LessonArtifact{
		ID:        uuid.NewString(),
		LearnerID: "lisa",
		SessionID: "session-1",
		Title:     "A different lesson",
		CreatedAt: time.Now(),
	}
	got, existed, err = s.Artifacts().InsertLessonIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, first.ID, got.ID, "the first artifact wins")
	assert.Equal(t, "Ordering at a café", got.Title)
}

func TestPlanVersionsMonotonicPerLearner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for want := 1; want <= 3; want++ {
		p := &PlanVersion{
			ID:        uuid.NewString(),
			LearnerID: "lisa",
			Summary:   "s",
			Body:      "b",
			Trigger:   "manual",
			CreatedAt: time.Now(),
		}
		require.NoError(t, s.Plans().Insert(ctx, p))
		assert.Equal(t, want, p.Version)
	}

	p := &PlanVersion{ID: uuid.NewString(), LearnerID: "marc", Trigger: "initial", CreatedAt: time.Now()}
	require.NoError(t, s.Plans().Insert(ctx, p))
	assert.Equal(t, 1, p.Version)
}

func TestQuizResultAggregates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)

	submit := func(score float64, at time.Time, items []QuizItemResult) {
		r := &QuizResult{ID: uuid.NewString(), LearnerID: "lisa", Score: score, SubmittedAt: at}
		require.NoError(t, s.QuizResults().Append(ctx, r, items))
	}

	submit(50, base, []QuizItemResult{
		{Skill: "grammar", Correct: false, Mistake: "past-tense"},
		{Skill: "vocabulary", Correct: true},
	})
	submit(70, base.Add(10*time.Minute), []QuizItemResult{
		{Skill: "grammar", Correct: true},
		{Skill: "vocabulary", Correct: true},
	})
	submit(90, base.Add(20*time.Minute), nil)

	scores, err := s.QuizResults().RecentScores(ctx, "lisa", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{70, 90}, scores, "last n in chronological order")

	acc, err := s.QuizResults().SkillAccuracy(ctx, "lisa", 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, acc["grammar"], 1e-9)
	assert.InDelta(t, 1.0, acc["vocabulary"], 1e-9)

	mistakes, err := s.QuizResults().RecentMistakes(ctx, "lisa", 10)
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "past-tense", mistakes[0].Mistake)
}

func TestProficiencyActiveLevelProjection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)

	record := func(skill, level string, accepted bool, at time.Time) {
		require.NoError(t, s.Proficiency().Append(ctx, &ProficiencyRecord{
			LearnerID:  "lisa",
			Skill:      skill,
			Level:      level,
			Confidence: 0.8,
			Source:     SourceReassessment,
			Trajectory: "stable",
			Accepted:   accepted,
			RecordedAt: at,
		}))
	}

	_, ok, err := s.Proficiency().ActiveLevel(ctx, "lisa", "grammar")
	require.NoError(t, err)
	assert.False(t, ok, "no active tier before any accepted record")

	record("grammar", "A2", true, base)
	record("grammar", "B1", true, base.Add(time.Minute))
	record("grammar", "B2", false, base.Add(2*time.Minute)) // rejected, must not surface
	record("reading", "A2", true, base)

	level, ok, err := s.Proficiency().ActiveLevel(ctx, "lisa", "grammar")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B1", level)

	levels, err := s.Proficiency().ActiveLevels(ctx, "lisa")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"grammar": "B1", "reading": "A2"}, levels)

	history, err := s.Proficiency().LastN(ctx, "lisa", "grammar", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "B1", history[0].Level, "oldest of the n first")
	assert.Equal(t, "B2", history[1].Level)
}

func TestLLMEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.LLMEvents().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "lesson",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  `{"system":"..."}`,
		ResponseBody: `{"title":"..."}`,
	}))

	events, err := s.LLMEvents().QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "lesson", events[0].Purpose)

	stats, err := s.LLMEvents().LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 120, stats[0].InputTokens)
}
