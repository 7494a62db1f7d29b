package artifacts

import (
	"bytes"
	"text/template"
)

const lessonSystemPrompt = `You are an expert language tutor preparing a one-session lesson. You are given the learner's current plan, their tier per sub-skill, topics they covered recently, and the sub-skills they have been getting wrong. Write a lesson that advances the plan without repeating recent topics.

Instructions:
- Target the learner's current tier. Material one notch harder is fine when their recent work is strong.
- Reinforce at most one weak sub-skill per lesson. Do not turn the lesson into remediation.
- Write the body in markdown with a short explanation, a dialogue or reading passage, worked examples, and 2-3 practice prompts.
- Use the lesson language for examples and the instruction language for explanations.`

type lessonPromptData struct {
	PlanSummary  string
	ActiveLevels map[string]string
	RecentTopics []string
	WeakSkills   []string
}

var lessonUserTemplate = template.Must(template.New("lesson").Parse(`Current plan: {{if .PlanSummary}}{{.PlanSummary}}{{else}}none yet — start from the learner's tier{{end}}

Tier per sub-skill:
{{- if .ActiveLevels}}
{{- range $skill, $level := .ActiveLevels}}
- {{$skill}}: {{$level}}
{{- end}}
{{- else}}
- not yet assessed
{{- end}}

Recently covered topics:{{if not .RecentTopics}} none{{end}}
{{- range .RecentTopics}}
- {{.}}
{{- end}}

Sub-skills with low recent quiz accuracy:{{if not .WeakSkills}} none{{end}}
{{- range .WeakSkills}}
- {{.}}
{{- end}}`))

func buildLessonMessage(data lessonPromptData) (string, error) {
	var buf bytes.Buffer
	if err := lessonUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const quizSystemPrompt = `You are an expert language tutor writing a short follow-up quiz for a lesson. Every question must be answerable from the lesson material alone.

Instructions:
- Write 3-8 questions covering the lesson's topics.
- Mix question styles: multiple choice (3-4 options) and short free response (empty options).
- Tag each question with the sub-skill it exercises.
- Keep explanations to one sentence.`

type quizPromptData struct {
	LessonTitle string
	LessonBody  string
}

var quizUserTemplate = template.Must(template.New("quiz").Parse(`Lesson: {{.LessonTitle}}

{{.LessonBody}}`))

func buildQuizMessage(data quizPromptData) (string, error) {
	var buf bytes.Buffer
	if err := quizUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
