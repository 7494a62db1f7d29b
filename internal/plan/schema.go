package plan

import "github.com/abhisek/lexio/internal/llm"

// PlanSchema defines the JSON schema for learning-plan generation.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A personalized learning plan for the coming weeks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "1-2 sentence summary of the plan's direction",
			},
			"focus_skills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 sub-skills the plan prioritizes",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The full plan in markdown: weekly focus areas, session themes, and review cadence",
			},
		},
		"required":             []any{"summary", "focus_skills", "body"},
		"additionalProperties": false,
	},
}
