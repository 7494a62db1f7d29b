package profile

import "github.com/abhisek/lexio/internal/proficiency"

const trajectoryWindow = 5

// ComputeTrajectory reads the direction of the recent proficiency
// history. Levels must be ordered oldest first; the direction compares
// the newest level against the oldest in the window.
func ComputeTrajectory(levels []proficiency.Level) TrajectorySummary {
	if len(levels) > trajectoryWindow {
		levels = levels[len(levels)-trajectoryWindow:]
	}

	ts := TrajectorySummary{Direction: TrendStable, Levels: make([]string, len(levels))}
	for i, l := range levels {
		ts.Levels[i] = string(l)
	}
	if len(levels) < 2 {
		return ts
	}

	first := levels[0].Rank()
	last := levels[len(levels)-1].Rank()
	switch {
	case last > first:
		ts.Direction = TrendImproving
	case last < first:
		ts.Direction = TrendDeclining
	}
	return ts
}
