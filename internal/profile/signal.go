package profile

import (
	"sort"
	"time"

	"github.com/abhisek/lexio/internal/skill"
)

// Signal is a timestamped learning observation. The windowing and
// averaging helpers below are generic over the signal source, so each
// aggregation reads review outcomes, completions, and observations
// through the same interface.
type Signal interface {
	When() time.Time
	Value() float64
}

// ReviewSignal is one recall attempt outcome.
type ReviewSignal struct {
	At    time.Time
	Skill skill.Skill
	Score float64
}

func (s ReviewSignal) When() time.Time { return s.At }
func (s ReviewSignal) Value() float64  { return s.Score }

// CompletionSignal is one finished activity.
type CompletionSignal struct {
	At            time.Time
	Kind          string
	Topic         string
	Score         float64
	StruggledWith []string
}

func (s CompletionSignal) When() time.Time { return s.At }
func (s CompletionSignal) Value() float64  { return s.Score }

// ObservationSignal is one scored modality observation.
type ObservationSignal struct {
	At     time.Time
	Skill  skill.Skill
	Score  float64
	Source string
}

func (s ObservationSignal) When() time.Time { return s.At }
func (s ObservationSignal) Value() float64  { return s.Score }

// sortChronological orders signals oldest first, in place.
func sortChronological[S Signal](signals []S) {
	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].When().Before(signals[j].When())
	})
}

// values extracts the signal values in slice order.
func values[S Signal](signals []S) []float64 {
	out := make([]float64, len(signals))
	for i, s := range signals {
		out[i] = s.Value()
	}
	return out
}

// lastN returns the trailing n values, or all of them if fewer exist.
func lastN(scores []float64, n int) []float64 {
	if len(scores) <= n {
		return scores
	}
	return scores[len(scores)-n:]
}

// mean returns the arithmetic mean, or 0 for empty input.
func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
