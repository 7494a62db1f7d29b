package artifacts

import "time"

// StageTimeout bounds each generation stage. A stuck provider fails the
// stage instead of hanging the session.
const StageTimeout = 30 * time.Second

// Status is the terminal state of one generation stage.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// StageResult describes how one stage ended. AlreadyExisted marks stages
// satisfied by an artifact persisted earlier for the same session.
type StageResult struct {
	Status         Status
	AlreadyExisted bool
	Err            error
}

// Report is the outcome of one orchestration run for a session.
type Report struct {
	SessionID string
	Lesson    StageResult
	Quiz      StageResult
}

// Lesson is the decoded shape of a generated lesson artifact body.
type Lesson struct {
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Topics    []string `json:"topics"`
	Body      string   `json:"body"`
}

// QuizQuestion is one generated quiz item.
type QuizQuestion struct {
	Skill       string   `json:"skill"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Quiz is the decoded shape of a generated quiz artifact body.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}
