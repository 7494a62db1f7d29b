package review

import (
	"math"
	"time"
)

// Apply runs one SM-2 update against a fact's state for a recall attempt
// scored 0-100. It returns the new state; the input is not modified and
// nothing is persisted here. Out-of-range scores are clamped.
//
// Failing recalls (quality < 3) reset the repetition ladder: one-day
// interval, repetitions back to zero, and a fixed ease penalty. Passing
// recalls climb the classic SM-2 curve: 1 day, 6 days, then
// interval × memory strength, with the ease adjustment rewarding
// quality 5 and slightly punishing a laboured quality 3.
func Apply(state FactState, score int, now time.Time) FactState {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	q := Quality(score)
	next := state

	if q < PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = FirstIntervalDays
		next.MemoryStrength = state.MemoryStrength - FailPenalty
	} else {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = FirstIntervalDays
		case 2:
			next.IntervalDays = SecondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * state.MemoryStrength))
		}
		if next.IntervalDays > MaxIntervalDays {
			next.IntervalDays = MaxIntervalDays
		}
		fq := float64(q)
		next.MemoryStrength = state.MemoryStrength + (0.1 - (5.0-fq)*(0.08+(5.0-fq)*0.02))
	}

	if next.MemoryStrength < MinMemoryStrength {
		next.MemoryStrength = MinMemoryStrength
	}

	next.TimesReviewed = state.TimesReviewed + 1
	s := score
	next.LastRecallScore = &s
	next.NextReviewDate = now.AddDate(0, 0, next.IntervalDays)

	return next
}
