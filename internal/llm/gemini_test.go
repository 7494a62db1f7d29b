package llm

import "testing"

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiAliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill": map[string]any{
				"type": "string",
				"enum": []any{"grammar", "vocabulary", "reading"},
			},
			"level":      map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number"},
			"topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"skill", "level"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["level"].Type != "STRING" {
		t.Fatalf("expected STRING for level, got %s", schema.Properties["level"].Type)
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["skill"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["skill"].Enum))
	}
	if schema.Properties["topics"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for topics, got %s", schema.Properties["topics"].Type)
	}
	if schema.Properties["topics"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for topics items, got %s", schema.Properties["topics"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
