package profile

// Optimal-challenge parameters. Scores inside the flow zone indicate
// material that is hard enough to engage without overwhelming.
const (
	RecentWindow = 8
	flowZoneLow  = 70.0
	flowZoneHigh = 85.0
)

// ComputeChallenge assesses whether the current material difficulty sits
// in the learner's optimal range. The recommendation reads only the
// trailing window: early struggles stay visible in the lifetime average
// but never drag the recommendation down once recent work is strong.
func ComputeChallenge(scores []float64) ChallengeAssessment {
	ca := ChallengeAssessment{Recommendation: KeepDifficulty}
	if len(scores) == 0 {
		return ca
	}

	recent := lastN(scores, RecentWindow)
	ca.RecentAverage = mean(recent)
	ca.LifetimeAverage = mean(scores)
	ca.RecentSamples = len(recent)

	inFlow := 0
	for _, s := range recent {
		if s >= flowZoneLow && s <= flowZoneHigh {
			inFlow++
		}
	}
	ca.FlowZoneShare = float64(inFlow) / float64(len(recent))

	switch {
	case ca.RecentAverage > flowZoneHigh:
		ca.Recommendation = IncreaseDifficulty
	case ca.RecentAverage < flowZoneLow:
		ca.Recommendation = DecreaseDifficulty
	}
	return ca
}
