package profile

import "github.com/abhisek/lexio/internal/skill"

// Modality class boundaries over mean observation score.
const (
	modalityStrongAtLeast   = 75.0
	modalityModerateAtLeast = 50.0
)

// ComputeModalities aggregates observation scores per modality. Every
// skill in the fixed set appears in the result; skills with no
// observations are classified no_data.
func ComputeModalities(obs []ObservationSignal) map[skill.Skill]Modality {
	sums := make(map[skill.Skill]float64)
	counts := make(map[skill.Skill]int)
	for _, o := range obs {
		sums[o.Skill] += o.Score
		counts[o.Skill]++
	}

	out := make(map[skill.Skill]Modality, len(skill.All()))
	for _, sk := range skill.All() {
		n := counts[sk]
		if n == 0 {
			out[sk] = Modality{Class: ModalityNoData}
			continue
		}
		m := sums[sk] / float64(n)
		class := ModalityWeak
		switch {
		case m >= modalityStrongAtLeast:
			class = ModalityStrong
		case m >= modalityModerateAtLeast:
			class = ModalityModerate
		}
		out[sk] = Modality{Class: class, MeanScore: m, Samples: n}
	}
	return out
}
