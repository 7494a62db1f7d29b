package profile

import (
	"testing"
	"time"

	"github.com/abhisek/lexio/internal/store"
)

func TestScoreTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Trend
	}{
		{"too few samples", []float64{40, 90, 20}, TrendStable},
		{"improving halves", []float64{50, 52, 70, 72}, TrendImproving},
		{"declining halves", []float64{80, 82, 60, 58}, TrendDeclining},
		{"within band is stable", []float64{70, 70, 72, 71}, TrendStable},
		{
			"ten samples compare last five against previous five",
			[]float64{90, 90, 90, 90, 90, 50, 50, 60, 60, 60, 72, 74, 76, 78, 80},
			TrendImproving,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreTrend(tt.scores); got != tt.want {
				t.Errorf("ScoreTrend(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestComputeEngagement(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	completions := []CompletionSignal{
		{At: base, Kind: store.KindLesson, Score: 70},
		{At: base.AddDate(0, 0, 1), Kind: store.KindGame, Score: 60},
		{At: base.AddDate(0, 0, 2), Kind: store.KindLesson, Score: 80},
		{At: base.AddDate(0, 0, 3), Kind: store.KindChallenge, Score: 85},
	}

	got := ComputeEngagement(completions, 9, 3)

	if got.LessonsCompleted != 2 {
		t.Errorf("lessons = %d, want 2", got.LessonsCompleted)
	}
	if got.GamesPlayed != 1 || got.ChallengesCompleted != 1 {
		t.Errorf("games = %d challenges = %d, want 1 and 1", got.GamesPlayed, got.ChallengesCompleted)
	}
	if got.MeanScore != 75 {
		t.Errorf("mean score = %v, want 75", got.MeanScore)
	}
	if got.ReviewCompletionRatio != 0.75 {
		t.Errorf("review ratio = %v, want 0.75", got.ReviewCompletionRatio)
	}
}

func TestComputeEngagementNoReviews(t *testing.T) {
	got := ComputeEngagement(nil, 0, 0)
	if got.ReviewCompletionRatio != 0 {
		t.Errorf("review ratio = %v, want 0", got.ReviewCompletionRatio)
	}
	if got.ScoreTrend != TrendStable {
		t.Errorf("trend = %s, want stable", got.ScoreTrend)
	}
}
