package proficiency

import (
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/skill"
)

// ReassessmentSchema defines the JSON schema for LLM tier reassessments.
var ReassessmentSchema = &llm.Schema{
	Name:        "proficiency-reassessment",
	Description: "Per-skill CEFR tier determination from recent learner performance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type":        "string",
							"enum":        skillNames(),
							"description": "The sub-skill being assessed",
						},
						"level": map[string]any{
							"type":        "string",
							"enum":        levelNames(),
							"description": "The CEFR tier the evidence supports",
						},
						"confidence": map[string]any{
							"type":        "number",
							"minimum":     0.0,
							"maximum":     1.0,
							"description": "Confidence (0.0–1.0) in this tier determination",
						},
						"trajectory": map[string]any{
							"type":        "string",
							"enum":        []any{"improving", "stable", "declining"},
							"description": "Direction of the learner's recent movement in this skill",
						},
						"justification": map[string]any{
							"type":        "string",
							"description": "One-sentence evidence summary for this determination",
						},
					},
					"required":             []any{"skill", "level", "confidence", "trajectory", "justification"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"assessments"},
		"additionalProperties": false,
	},
}

func skillNames() []any {
	out := make([]any, 0, len(skill.All()))
	for _, s := range skill.All() {
		out = append(out, string(s))
	}
	return out
}

func levelNames() []any {
	out := make([]any, 0, len(Levels()))
	for _, l := range Levels() {
		out = append(out, string(l))
	}
	return out
}
