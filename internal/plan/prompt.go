package plan

import (
	"bytes"
	"text/template"
)

const planSystemPrompt = `You are an expert language-learning coach revising a learner's plan. You are given their tier per sub-skill, the previous plan, their recent topics and quiz performance, teacher notes, and their trouble spots. Produce the next plan, not a restatement of the old one.

Instructions:
- Keep what the previous plan got right and change what the evidence contradicts.
- Prioritize 2-3 sub-skills. A plan that focuses on everything focuses on nothing.
- Lay out the body in markdown: weekly focus areas, suggested session themes, and a review cadence.
- Keep the summary to two sentences at most.`

type promptData struct {
	Trigger       string
	ActiveLevels  map[string]string
	PreviousPlan  string
	RecentTopics  []string
	QuizAccuracy  []string
	Mistakes      []string
	Notes         []string
	ErrorPatterns []string
}

var planUserTemplate = template.Must(template.New("plan").Parse(`Revision trigger: {{.Trigger}}

Tier per sub-skill:
{{- if .ActiveLevels}}
{{- range $skill, $level := .ActiveLevels}}
- {{$skill}}: {{$level}}
{{- end}}
{{- else}}
- not yet assessed
{{- end}}

Previous plan:
{{if .PreviousPlan}}{{.PreviousPlan}}{{else}}none — this is the first plan{{end}}

Recently covered topics:{{if not .RecentTopics}} none{{end}}
{{- range .RecentTopics}}
- {{.}}
{{- end}}

Recent quiz accuracy per sub-skill:{{if not .QuizAccuracy}} no quizzes yet{{end}}
{{- range .QuizAccuracy}}
- {{.}}
{{- end}}

Recent quiz mistakes:{{if not .Mistakes}} none{{end}}
{{- range .Mistakes}}
- {{.}}
{{- end}}

Teacher notes:{{if not .Notes}} none{{end}}
{{- range .Notes}}
- {{.}}
{{- end}}

Recurring trouble spots:{{if not .ErrorPatterns}} none{{end}}
{{- range .ErrorPatterns}}
- {{.}}
{{- end}}`))

func buildPlanMessage(data promptData) (string, error) {
	var buf bytes.Buffer
	if err := planUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
