package review

import "time"

// FactState holds the spaced repetition state for a single reviewable fact.
type FactState struct {
	MemoryStrength  float64   `json:"memory_strength"`
	IntervalDays    int       `json:"interval_days"`
	Repetitions     int       `json:"repetitions"`
	TimesReviewed   int       `json:"times_reviewed"`
	LastRecallScore *int      `json:"last_recall_score,omitempty"`
	NextReviewDate  time.Time `json:"next_review_date"`
}

// NewFactState returns the initial state for a freshly extracted fact:
// default ease, due immediately.
func NewFactState(now time.Time) FactState {
	return FactState{
		MemoryStrength: 2.5,
		IntervalDays:   0,
		NextReviewDate: now,
	}
}

// IsDue returns true if the fact is at or past its review date.
func (fs *FactState) IsDue(now time.Time) bool {
	return !now.Before(fs.NextReviewDate)
}

// OverdueDays returns how many days past due the fact is. Returns 0 if
// not yet due.
func (fs *FactState) OverdueDays(now time.Time) float64 {
	if now.Before(fs.NextReviewDate) {
		return 0
	}
	return now.Sub(fs.NextReviewDate).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (fs *FactState) DaysUntilReview(now time.Time) int {
	if fs.IsDue(now) {
		return 0
	}
	return int(fs.NextReviewDate.Sub(now).Hours()/24.0) + 1
}

// NeverReviewed reports whether the fact has no recorded recall attempts.
func (fs *FactState) NeverReviewed() bool {
	return fs.TimesReviewed == 0
}
