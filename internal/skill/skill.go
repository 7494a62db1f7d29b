package skill

import "fmt"

// Skill is one of the fixed language modalities tracked by the core.
// Facts, observations, and proficiency records are all keyed by Skill.
type Skill string

const (
	Grammar    Skill = "grammar"
	Vocabulary Skill = "vocabulary"
	Speaking   Skill = "speaking"
	Listening  Skill = "listening"
	Writing    Skill = "writing"
	Reading    Skill = "reading"
)

// All returns the fixed skill set in display order.
func All() []Skill {
	return []Skill{Grammar, Vocabulary, Speaking, Listening, Writing, Reading}
}

// Parse converts a string to a Skill, rejecting unknown values.
func Parse(s string) (Skill, error) {
	for _, sk := range All() {
		if string(sk) == s {
			return sk, nil
		}
	}
	return "", fmt.Errorf("unknown skill: %q", s)
}

// Valid reports whether s is one of the fixed skills.
func Valid(s Skill) bool {
	_, err := Parse(string(s))
	return err == nil
}
