package proficiency

import "fmt"

// Level is a CEFR proficiency tier.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Levels returns the tiers in ascending order.
func Levels() []Level {
	return []Level{A1, A2, B1, B2, C1, C2}
}

// Rank returns the ordinal position of a level (A1 = 0). Unknown levels
// rank below A1.
func (l Level) Rank() int {
	for i, lv := range Levels() {
		if lv == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is a known tier.
func (l Level) Valid() bool {
	return l.Rank() >= 0
}

// ParseLevel converts a string to a Level, rejecting unknown values.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown proficiency level: %q", s)
	}
	return l, nil
}
