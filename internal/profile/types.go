package profile

import (
	"time"

	"github.com/abhisek/lexio/internal/skill"
)

// Trend is a direction label shared by score trends and tier trajectories.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// SpeedClass classifies how quickly a learner reaches fact mastery.
type SpeedClass string

const (
	SpeedFast     SpeedClass = "fast"
	SpeedModerate SpeedClass = "moderate"
	SpeedSlow     SpeedClass = "slow"
	SpeedUnknown  SpeedClass = "unknown"
)

// ModalityClass classifies observed performance in one modality.
type ModalityClass string

const (
	ModalityStrong   ModalityClass = "strong"
	ModalityModerate ModalityClass = "moderate"
	ModalityWeak     ModalityClass = "weak"
	ModalityNoData   ModalityClass = "no_data"
)

// Recommendation is the optimal-challenge difficulty adjustment.
type Recommendation string

const (
	IncreaseDifficulty Recommendation = "increase_difficulty"
	DecreaseDifficulty Recommendation = "decrease_difficulty"
	KeepDifficulty     Recommendation = "maintain"
)

// Snapshot is one immutable, versioned learner profile ("DNA"). A new
// snapshot is computed on trigger events; the latest one is active.
type Snapshot struct {
	LearnerID  string    `json:"learner_id"`
	Version    int       `json:"version"`
	ComputedAt time.Time `json:"computed_at"`

	LearningSpeed LearningSpeed            `json:"learning_speed"`
	Modalities    map[skill.Skill]Modality `json:"modalities"`
	Vocabulary    VocabularyStats          `json:"vocabulary"`
	Engagement    Engagement               `json:"engagement"`
	Challenge     ChallengeAssessment      `json:"challenge"`
	Frustration   FrustrationIndicators    `json:"frustration"`
	ErrorPatterns []ErrorPattern           `json:"error_patterns"`
	Trajectory    TrajectorySummary        `json:"trajectory"`
}

// LearningSpeed summarizes repetitions-to-mastery across mastered facts.
type LearningSpeed struct {
	Class           SpeedClass `json:"class"`
	MeanRepetitions float64    `json:"mean_repetitions"`
	MasteredFacts   int        `json:"mastered_facts"`
}

// Modality holds the aggregate for one observed skill modality.
type Modality struct {
	Class     ModalityClass `json:"class"`
	MeanScore float64       `json:"mean_score"`
	Samples   int           `json:"samples"`
}

// VocabularyStats summarizes vocabulary acquisition.
type VocabularyStats struct {
	TotalItems     int     `json:"total_items"`
	MasteredItems  int     `json:"mastered_items"`
	WeeklyRate     float64 `json:"weekly_rate"`
	MeanStrength   float64 `json:"mean_strength"`
	RetentionRatio float64 `json:"retention_ratio"`
}

// Engagement summarizes activity volume and the score trend.
type Engagement struct {
	LessonsCompleted      int     `json:"lessons_completed"`
	MeanScore             float64 `json:"mean_score"`
	ScoreTrend            Trend   `json:"score_trend"`
	GamesPlayed           int     `json:"games_played"`
	ChallengesCompleted   int     `json:"challenges_completed"`
	ReviewCompletionRatio float64 `json:"review_completion_ratio"`
}

// ChallengeAssessment compares the recent score window against the
// lifetime average. The recommendation is driven by the recent window
// only — a learner who struggled long ago but performs well now must be
// recommended for more challenge.
type ChallengeAssessment struct {
	RecentAverage   float64        `json:"recent_average"`
	LifetimeAverage float64        `json:"lifetime_average"`
	RecentSamples   int            `json:"recent_samples"`
	FlowZoneShare   float64        `json:"flow_zone_share"`
	Recommendation  Recommendation `json:"recommendation"`
}

// FrustrationIndicators flags early signs of learner frustration.
type FrustrationIndicators struct {
	DecliningScores      bool `json:"declining_scores"`
	NeglectedFacts       int  `json:"neglected_facts"`
	InactivityStreakDays int  `json:"inactivity_streak_days"`
}

// ErrorPattern is one struggling tag with its occurrence count.
type ErrorPattern struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TrajectorySummary is the direction of the recent tier history.
type TrajectorySummary struct {
	Direction Trend    `json:"direction"`
	Levels    []string `json:"levels"`
}

// FactInfo is the minimal fact view the aggregations need.
type FactInfo struct {
	Skill          skill.Skill
	MemoryStrength float64
	Repetitions    int
	TimesReviewed  int
	CreatedAt      time.Time
	NextReviewDate time.Time
}
