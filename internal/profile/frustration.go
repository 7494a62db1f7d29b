package profile

import "time"

// Frustration detection parameters.
const (
	frustrationWindow = 3
	maxStreakDays     = 365
)

// ComputeFrustration flags early signs of disengagement: a short
// declining score run, facts the learner has never come back to, and the
// current inactivity streak.
func ComputeFrustration(scores []float64, facts []FactInfo, lastActive []time.Time, now time.Time) FrustrationIndicators {
	var fi FrustrationIndicators

	if len(scores) >= 2*frustrationWindow {
		last := mean(scores[len(scores)-frustrationWindow:])
		prev := mean(scores[len(scores)-2*frustrationWindow : len(scores)-frustrationWindow])
		fi.DecliningScores = last < prev
	}

	for _, f := range facts {
		if f.TimesReviewed == 0 && now.After(f.NextReviewDate) {
			fi.NeglectedFacts++
		}
	}

	fi.InactivityStreakDays = inactivityStreak(lastActive, now)
	return fi
}

// inactivityStreak counts whole days since the most recent activity,
// capped at a year. A learner with no history has no streak yet.
func inactivityStreak(lastActive []time.Time, now time.Time) int {
	var latest time.Time
	for _, t := range lastActive {
		if t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return 0
	}
	days := int(now.Sub(latest).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if days > maxStreakDays {
		days = maxStreakDays
	}
	return days
}
