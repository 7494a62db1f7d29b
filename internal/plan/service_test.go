package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/store"
)

func planResponse(n int) llm.MockResponse {
	content := fmt.Sprintf(`{
		"summary": "Plan revision %d.",
		"focus_skills": ["grammar", "listening"],
		"body": "## Week 1\nPast tense drills.\n## Week 2\nListening practice."
	}`, n)
	return llm.MockResponse{Content: json.RawMessage(content)}
}

func newTestService(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st, mock), st
}

func TestUpdateCreatesFirstVersion(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(planResponse(1))
	svc, st := newTestService(t, mock)

	res, err := svc.Update(ctx, "lisa", TriggerInitial)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if res.Version != 1 {
		t.Errorf("version = %d, want 1", res.Version)
	}
	if len(res.FocusSkills) != 2 {
		t.Errorf("focus skills = %v", res.FocusSkills)
	}

	stored, err := st.Plans().Latest(ctx, "lisa")
	if err != nil || stored == nil {
		t.Fatalf("latest plan missing: %v", err)
	}
	if stored.Trigger != TriggerInitial {
		t.Errorf("trigger = %q, want %q", stored.Trigger, TriggerInitial)
	}
}

func TestUpdateVersionsAreMonotonic(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(planResponse(1), planResponse(2), planResponse(3))
	svc, st := newTestService(t, mock)

	for want := 1; want <= 3; want++ {
		res, err := svc.Update(ctx, "lisa", TriggerTierChange)
		if err != nil {
			t.Fatalf("Update %d failed: %v", want, err)
		}
		if res.Version != want {
			t.Errorf("version = %d, want %d", res.Version, want)
		}
	}

	all, err := st.Plans().All(ctx, "lisa")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("stored versions = %d, want 3", len(all))
	}
	// Old versions stay untouched.
	if all[0].Summary != "Plan revision 1." {
		t.Errorf("v1 summary = %q, first revision must be immutable", all[0].Summary)
	}
}

func TestUpdateFailureCreatesNoVersion(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc, st := newTestService(t, mock)

	if _, err := svc.Update(ctx, "lisa", TriggerManual); err == nil {
		t.Fatal("want error from failed generation")
	}

	stored, err := st.Plans().Latest(ctx, "lisa")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if stored != nil {
		t.Errorf("no version must exist after a failed revision, got v%d", stored.Version)
	}
}

func TestUpdateGathersQuizEvidenceAndNotes(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(planResponse(1))
	svc, st := newTestService(t, mock)

	result := &store.QuizResult{
		ID:          uuid.NewString(),
		LearnerID:   "lisa",
		Score:       50,
		SubmittedAt: time.Now(),
	}
	items := []store.QuizItemResult{
		{ResultID: result.ID, Skill: "grammar", Correct: false, Mistake: "gender-agreement"},
		{ResultID: result.ID, Skill: "vocabulary", Correct: true},
	}
	if err := st.QuizResults().Append(ctx, result, items); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	err := st.Notes().Append(ctx, &store.Note{
		LearnerID: "lisa",
		Author:    "ms-dupont",
		Body:      "Needs more speaking practice.",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed note: %v", err)
	}

	if _, err := svc.Update(ctx, "lisa", TriggerQuiz); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"grammar: 0% correct",
		"vocabulary: 100% correct",
		"grammar: gender-agreement",
		"Needs more speaking practice.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

type deadlineRecorder struct {
	content     json.RawMessage
	hadDeadline bool
}

func (p *deadlineRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	_, p.hadDeadline = ctx.Deadline()
	return &llm.Response{Content: p.content, Model: "recorder", StopReason: "end"}, nil
}

func (p *deadlineRecorder) ModelID() string { return "recorder" }

func TestUpdateBoundsGenerationWithTimeout(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	rec := &deadlineRecorder{content: planResponse(1).Content}
	svc := NewService(st, rec)

	if _, err := svc.Update(context.Background(), "lisa", TriggerManual); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !rec.hadDeadline {
		t.Error("Generate ran without a deadline")
	}
}

func TestUpdateIncludesPreviousPlanInPrompt(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(planResponse(1), planResponse(2))
	svc, _ := newTestService(t, mock)

	if _, err := svc.Update(ctx, "lisa", TriggerInitial); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}
	if _, err := svc.Update(ctx, "lisa", TriggerTierChange); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(mock.Calls))
	}
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "Week 1") || !strings.Contains(second, "tier_change") {
		t.Errorf("second prompt missing previous plan or trigger:\n%s", second)
	}
}
