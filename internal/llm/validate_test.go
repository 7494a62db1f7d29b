package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func assessmentSchema() *Schema {
	return &Schema{
		Name:        "tier-assessment",
		Description: "A single skill tier assessment",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"skill":      map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "number", "minimum": 0},
				"level":      map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1"}},
			},
			"required": []any{"skill", "confidence"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"skill":"grammar","confidence":0.8,"level":"A2"}`)
	if err := validateResponse(assessmentSchema(), raw); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateResponseOptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"skill":"reading","confidence":0.4}`)
	if err := validateResponse(assessmentSchema(), raw); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateResponseRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"skill":"grammar"}`},
		{"wrong type", `{"skill":"grammar","confidence":"high"}`},
		{"enum violation", `{"skill":"grammar","confidence":0.8,"level":"Z9"}`},
		{"malformed JSON", `{not json}`},
		{"empty response", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(assessmentSchema(), json.RawMessage(tt.raw))
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "quiz-result",
		Description: "Nested quiz result",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"learner": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"learner", "scores"},
		},
	}

	valid := json.RawMessage(`{"learner":{"id":"default"},"scores":[90,85,92]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	invalid := json.RawMessage(`{"learner":{"id":"default"},"scores":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
