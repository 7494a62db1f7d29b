package proficiency

import (
	"bytes"
	"text/template"
)

const reassessmentSystemPrompt = `You are an expert language-proficiency assessor. You are given a learner's recent performance evidence and their current CEFR tier per sub-skill. Your job is to determine, for each sub-skill with enough evidence, the tier the evidence supports now.

Instructions:
- Assess only sub-skills that appear in the evidence. Omit sub-skills with no signal.
- Weigh the learner's trajectory: a learner trending upward through a tier deserves the benefit of borderline evidence; a declining learner does not.
- Tier changes of more than one step at a time are rare. Prefer the adjacent tier unless the evidence is overwhelming.
- Provide a confidence score (0.0–1.0) for every determination. Use low confidence when evidence is thin or mixed.
- Keep each justification to one sentence.`

type promptData struct {
	ActiveLevels map[string]string
	TierHistory  []historyEntry
	Lessons      []lessonEntry
	QuizScores   []float64
}

type historyEntry struct {
	Skill string
	Level string
	When  string
}

type lessonEntry struct {
	Topic      string
	Difficulty string
	Score      float64
	When       string
}

var reassessmentUserTemplate = template.Must(template.New("reassessment").Parse(`Current tiers per sub-skill:
{{- if .ActiveLevels}}
{{- range $skill, $level := .ActiveLevels}}
- {{$skill}}: {{$level}}
{{- end}}
{{- else}}
- none established yet
{{- end}}

Tier history (oldest first):
{{- if .TierHistory}}
{{- range .TierHistory}}
- {{.When}}: {{.Skill}} -> {{.Level}}
{{- end}}
{{- else}}
- no prior determinations
{{- end}}

Recent lessons (oldest first):
{{- range .Lessons}}
- {{.When}}: "{{.Topic}}" ({{.Difficulty}}), score {{printf "%.0f" .Score}}
{{- end}}

Recent quiz scores (oldest first): {{range $i, $s := .QuizScores}}{{if $i}}, {{end}}{{printf "%.0f" $s}}{{end}}`))

func buildReassessmentMessage(data promptData) (string, error) {
	var buf bytes.Buffer
	if err := reassessmentUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
