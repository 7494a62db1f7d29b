package review

// MinMemoryStrength is the SM-2 ease factor floor. Memory strength is
// clamped here after every update.
const MinMemoryStrength = 1.3

// FailPenalty is subtracted from memory strength on a failing recall.
const FailPenalty = 0.2

// PassThreshold is the lowest quality counted as a passing recall.
const PassThreshold = 3

// FirstIntervalDays and SecondIntervalDays are the fixed SM-2 intervals
// for the first two passing reviews. From the third onward the interval
// grows by the memory-strength multiplier.
const (
	FirstIntervalDays  = 1
	SecondIntervalDays = 6
)

// MaxIntervalDays caps interval growth at one year.
const MaxIntervalDays = 365

// qualityBands maps recall-score upper bounds (exclusive) to quality.
// Scores at or above the last bound map to quality 5.
var qualityBands = []struct {
	Below   int
	Quality int
}{
	{30, 0},
	{50, 1},
	{60, 2},
	{70, 3},
	{85, 4},
}

// Quality discretizes a 0-100 recall score into the 0-5 SM-2 quality
// signal. Out-of-range scores are clamped, never rejected.
func Quality(score int) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, b := range qualityBands {
		if score < b.Below {
			return b.Quality
		}
	}
	return 5
}
