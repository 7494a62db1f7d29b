package profile

import "github.com/abhisek/lexio/internal/store"

// trendBand is the score-point margin within which two window averages
// count as stable.
const trendBand = 3.0

// ComputeEngagement summarizes activity volume and the score trend over
// lesson completions. reviewsDone and overdueNow feed the review
// completion ratio.
func ComputeEngagement(completions []CompletionSignal, reviewsDone, overdueNow int) Engagement {
	sortChronological(completions)

	var eng Engagement
	var lessonScores []float64
	for _, c := range completions {
		switch c.Kind {
		case store.KindLesson:
			eng.LessonsCompleted++
			lessonScores = append(lessonScores, c.Score)
		case store.KindGame:
			eng.GamesPlayed++
		case store.KindChallenge:
			eng.ChallengesCompleted++
		}
	}

	eng.MeanScore = mean(lessonScores)
	eng.ScoreTrend = ScoreTrend(lessonScores)
	if total := reviewsDone + overdueNow; total > 0 {
		eng.ReviewCompletionRatio = float64(reviewsDone) / float64(total)
	}
	return eng
}

// ScoreTrend compares a recent score window against the preceding one.
// With ten or more samples the windows are the last five and the five
// before them; with fewer the series is split in half. Fewer than four
// samples is always stable.
func ScoreTrend(scores []float64) Trend {
	if len(scores) < 4 {
		return TrendStable
	}

	var earlier, later []float64
	if len(scores) >= 10 {
		later = scores[len(scores)-5:]
		earlier = scores[len(scores)-10 : len(scores)-5]
	} else {
		mid := len(scores) / 2
		earlier = scores[:mid]
		later = scores[mid:]
	}

	diff := mean(later) - mean(earlier)
	switch {
	case diff > trendBand:
		return TrendImproving
	case diff < -trendBand:
		return TrendDeclining
	default:
		return TrendStable
	}
}
