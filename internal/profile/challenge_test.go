package profile

import (
	"math"
	"testing"
)

func TestComputeChallengeRecommendation(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Recommendation
	}{
		{"no history", nil, KeepDifficulty},
		{"cruising", []float64{90, 92, 88, 95}, IncreaseDifficulty},
		{"struggling", []float64{40, 55, 62, 50}, DecreaseDifficulty},
		{"in the flow zone", []float64{72, 78, 80, 75}, KeepDifficulty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeChallenge(tt.scores)
			if got.Recommendation != tt.want {
				t.Errorf("recommendation = %s, want %s", got.Recommendation, tt.want)
			}
		})
	}
}

// A learner whose early lessons went badly but whose recent work is
// solid must not be told to ease off: only the trailing window drives
// the recommendation, while the lifetime average keeps the full story.
func TestComputeChallengeWindowBeatsLifetime(t *testing.T) {
	scores := []float64{15, 25, 32, 42, 52, 60, 67, 73, 80, 85, 50, 62, 73, 83, 90}

	got := ComputeChallenge(scores)

	if got.RecentSamples != RecentWindow {
		t.Fatalf("recent samples = %d, want %d", got.RecentSamples, RecentWindow)
	}
	if math.Abs(got.RecentAverage-74.5) > 1e-9 {
		t.Errorf("recent average = %v, want 74.5", got.RecentAverage)
	}
	if got.LifetimeAverage >= flowZoneLow {
		t.Fatalf("lifetime average = %v, expected below the flow zone for this fixture", got.LifetimeAverage)
	}
	if got.Recommendation == DecreaseDifficulty {
		t.Errorf("recommendation = %s; recovered learner must not be eased off", got.Recommendation)
	}
	if got.Recommendation != KeepDifficulty {
		t.Errorf("recommendation = %s, want %s", got.Recommendation, KeepDifficulty)
	}
}

func TestComputeChallengeFlowZoneShare(t *testing.T) {
	got := ComputeChallenge([]float64{70, 85, 69, 86})
	if got.FlowZoneShare != 0.5 {
		t.Errorf("flow zone share = %v, want 0.5", got.FlowZoneShare)
	}
}
