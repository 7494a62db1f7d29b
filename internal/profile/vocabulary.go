package profile

import (
	"time"

	"github.com/abhisek/lexio/internal/skill"
)

const vocabularyRateWindowDays = 30

// ComputeVocabulary summarizes vocabulary acquisition from the vocabulary
// facts alone. The weekly rate is the item count introduced in the last
// 30 days spread over its four weeks.
func ComputeVocabulary(facts []FactInfo, now time.Time) VocabularyStats {
	var stats VocabularyStats
	var strengthSum float64
	cutoff := now.AddDate(0, 0, -vocabularyRateWindowDays)

	var recent int
	for _, f := range facts {
		if f.Skill != skill.Vocabulary {
			continue
		}
		stats.TotalItems++
		strengthSum += f.MemoryStrength
		if f.Repetitions >= MasteredRepetitions {
			stats.MasteredItems++
		}
		if f.CreatedAt.After(cutoff) {
			recent++
		}
	}
	if stats.TotalItems == 0 {
		return stats
	}

	stats.WeeklyRate = float64(recent) / 4.0
	stats.MeanStrength = strengthSum / float64(stats.TotalItems)
	stats.RetentionRatio = float64(stats.MasteredItems) / float64(stats.TotalItems)
	return stats
}
