package skill

import "testing"

func TestAll_Length(t *testing.T) {
	if len(All()) != 6 {
		t.Errorf("expected 6 skills, got %d", len(All()))
	}
}

func TestParse_Known(t *testing.T) {
	for _, sk := range All() {
		got, err := Parse(string(sk))
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", sk, err)
		}
		if got != sk {
			t.Errorf("Parse(%q) = %q", sk, got)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("calculus"); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestValid(t *testing.T) {
	if !Valid(Grammar) {
		t.Error("expected grammar to be valid")
	}
	if Valid(Skill("juggling")) {
		t.Error("expected juggling to be invalid")
	}
}
