package review

import (
	"sort"
	"time"
)

// QueueEntry is one due fact in the review queue.
type QueueEntry struct {
	ID             string
	MemoryStrength float64
	TimesReviewed  int
	NextReviewDate time.Time
}

// Prioritize orders due facts for review: facts never reviewed come
// first, then the weakest ease, then the earliest due date. The input is
// not modified.
func Prioritize(entries []QueueEntry) []QueueEntry {
	out := make([]QueueEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].TimesReviewed == 0) != (out[j].TimesReviewed == 0) {
			return out[i].TimesReviewed == 0
		}
		if out[i].MemoryStrength != out[j].MemoryStrength {
			return out[i].MemoryStrength < out[j].MemoryStrength
		}
		return out[i].NextReviewDate.Before(out[j].NextReviewDate)
	})
	return out
}
