package difficulty

import (
	"testing"

	"github.com/abhisek/lexio/internal/skill"
)

func facts(sk skill.Skill, strengths ...float64) []Fact {
	out := make([]Fact, len(strengths))
	for i, s := range strengths {
		out[i] = Fact{Skill: sk, MemoryStrength: s}
	}
	return out
}

func TestClassify_Simplify(t *testing.T) {
	got := Classify(facts(skill.Grammar, 1.3, 1.5, 1.6))
	if got[skill.Grammar] != Simplify {
		t.Errorf("decision = %q, want simplify", got[skill.Grammar])
	}
}

func TestClassify_Challenge(t *testing.T) {
	got := Classify(facts(skill.Vocabulary, 3.0, 3.2, 2.9))
	if got[skill.Vocabulary] != Challenge {
		t.Errorf("decision = %q, want challenge", got[skill.Vocabulary])
	}
}

func TestClassify_Maintain(t *testing.T) {
	got := Classify(facts(skill.Reading, 2.0, 2.5))
	if got[skill.Reading] != Maintain {
		t.Errorf("decision = %q, want maintain", got[skill.Reading])
	}
}

func TestClassify_BoundariesAreMaintain(t *testing.T) {
	// Means of exactly 1.8 and 2.8 sit inside the maintain band.
	if got := Classify(facts(skill.Grammar, 1.8, 1.8)); got[skill.Grammar] != Maintain {
		t.Errorf("mean 1.8: decision = %q, want maintain", got[skill.Grammar])
	}
	if got := Classify(facts(skill.Grammar, 2.8, 2.8)); got[skill.Grammar] != Maintain {
		t.Errorf("mean 2.8: decision = %q, want maintain", got[skill.Grammar])
	}
}

func TestClassify_ColdStartGate(t *testing.T) {
	// Exactly MinSample facts: classified. One fewer: omitted.
	atGate := Classify(facts(skill.Writing, 1.4, 1.4))
	if _, ok := atGate[skill.Writing]; !ok {
		t.Error("expected classification with exactly MinSample facts")
	}

	belowGate := Classify(facts(skill.Writing, 1.4))
	if _, ok := belowGate[skill.Writing]; ok {
		t.Error("expected skill omitted below MinSample")
	}
}

func TestClassify_MixedSkills(t *testing.T) {
	input := append(facts(skill.Grammar, 1.4, 1.5), facts(skill.Listening, 3.1, 3.3)...)
	input = append(input, Fact{Skill: skill.Speaking, MemoryStrength: 2.0}) // below gate

	got := Classify(input)

	if len(got) != 2 {
		t.Fatalf("expected 2 classified skills, got %d", len(got))
	}
	if got[skill.Grammar] != Simplify {
		t.Errorf("grammar = %q, want simplify", got[skill.Grammar])
	}
	if got[skill.Listening] != Challenge {
		t.Errorf("listening = %q, want challenge", got[skill.Listening])
	}
}

func TestClassify_Empty(t *testing.T) {
	if got := Classify(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
