package profile

// MasteredRepetitions is the repetition count at which a fact is
// considered mastered for profiling purposes.
const MasteredRepetitions = 5

// Learning-speed class boundaries over mean repetitions-to-mastery.
const (
	speedFastBelow    = 8.0
	speedModerateUpTo = 15.0
)

// ComputeLearningSpeed classifies how quickly the learner masters facts,
// from the mean repetition count among mastered facts. With no mastered
// facts the class is unknown.
func ComputeLearningSpeed(facts []FactInfo) LearningSpeed {
	var sum float64
	var n int
	for _, f := range facts {
		if f.Repetitions >= MasteredRepetitions {
			sum += float64(f.Repetitions)
			n++
		}
	}
	if n == 0 {
		return LearningSpeed{Class: SpeedUnknown}
	}

	m := sum / float64(n)
	class := SpeedSlow
	switch {
	case m < speedFastBelow:
		class = SpeedFast
	case m <= speedModerateUpTo:
		class = SpeedModerate
	}
	return LearningSpeed{Class: class, MeanRepetitions: m, MasteredFacts: n}
}
