package difficulty

import "github.com/abhisek/lexio/internal/skill"

// Decision is the per-skill difficulty adjustment.
type Decision string

const (
	Simplify  Decision = "simplify"
	Maintain  Decision = "maintain"
	Challenge Decision = "challenge"
)

// MinSample is the cold-start gate: skills with fewer facts than this are
// omitted from the result entirely. Callers must treat an absent skill as
// "insufficient data", not as Maintain.
const MinSample = 2

// Decision thresholds over mean memory strength.
const (
	SimplifyBelow  = 1.8
	ChallengeAbove = 2.8
)

// Fact is the minimal view of a reviewable fact the engine needs.
type Fact struct {
	Skill          skill.Skill
	MemoryStrength float64
}

// Classify groups facts by skill and maps each sufficiently sampled group
// to a difficulty decision based on mean memory strength. Deterministic;
// no state is read or written beyond the input slice.
func Classify(facts []Fact) map[skill.Skill]Decision {
	sums := make(map[skill.Skill]float64)
	counts := make(map[skill.Skill]int)
	for _, f := range facts {
		sums[f.Skill] += f.MemoryStrength
		counts[f.Skill]++
	}

	result := make(map[skill.Skill]Decision)
	for sk, n := range counts {
		if n < MinSample {
			continue
		}
		mean := sums[sk] / float64(n)
		switch {
		case mean < SimplifyBelow:
			result[sk] = Simplify
		case mean > ChallengeAbove:
			result[sk] = Challenge
		default:
			result[sk] = Maintain
		}
	}
	return result
}
