package artifacts

import (
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/skill"
)

// LessonSchema defines the JSON schema for session lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "session-lesson",
	Description: "A personalized language lesson for one confirmed session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the lesson (3-8 words)",
			},
			"objective": map[string]any{
				"type":        "string",
				"description": "One sentence stating what the learner will be able to do afterwards",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 topic tags this lesson covers (kebab-case)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The full lesson in markdown: explanation, dialogue or reading, worked examples, and practice prompts",
			},
		},
		"required":             []any{"title", "objective", "topics", "body"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for follow-up quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "session-quiz",
	Description: "A follow-up quiz testing the material of a generated lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 8,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type":        "string",
							"enum":        quizSkillNames(),
							"description": "The sub-skill this question exercises",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-4 answer options for multiple choice, empty for free response",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation of the correct answer",
						},
					},
					"required":             []any{"skill", "prompt", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

func quizSkillNames() []any {
	out := make([]any, 0, len(skill.All()))
	for _, s := range skill.All() {
		out = append(out, string(s))
	}
	return out
}
