package profile

import (
	"testing"

	"github.com/abhisek/lexio/internal/proficiency"
)

func TestComputeTrajectory(t *testing.T) {
	tests := []struct {
		name   string
		levels []proficiency.Level
		want   Trend
	}{
		{"no history", nil, TrendStable},
		{"single record", []proficiency.Level{proficiency.B1}, TrendStable},
		{"climbing", []proficiency.Level{proficiency.A1, proficiency.A2, proficiency.B1}, TrendImproving},
		{"slipping", []proficiency.Level{proficiency.B2, proficiency.B1}, TrendDeclining},
		{"flat", []proficiency.Level{proficiency.B1, proficiency.B1, proficiency.B1}, TrendStable},
		{
			"only the last five count",
			[]proficiency.Level{proficiency.C1, proficiency.A1, proficiency.A2, proficiency.A2, proficiency.B1, proficiency.B1},
			TrendImproving,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTrajectory(tt.levels)
			if got.Direction != tt.want {
				t.Errorf("direction = %s, want %s", got.Direction, tt.want)
			}
		})
	}
}

func TestComputeTrajectoryLevels(t *testing.T) {
	got := ComputeTrajectory([]proficiency.Level{proficiency.A2, proficiency.B1})
	if len(got.Levels) != 2 || got.Levels[0] != "A2" || got.Levels[1] != "B1" {
		t.Errorf("levels = %v, want [A2 B1]", got.Levels)
	}
}
