package store

import "github.com/jmoiron/sqlx"

// schema is the full table set. Everything except the fact state and the
// derived "active" projections is append-only.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS facts (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		skill TEXT NOT NULL,
		content TEXT NOT NULL,
		memory_strength REAL NOT NULL DEFAULT 2.5,
		interval_days INTEGER NOT NULL DEFAULT 0,
		repetitions INTEGER NOT NULL DEFAULT 0,
		times_reviewed INTEGER NOT NULL DEFAULT 0,
		last_recall_score INTEGER,
		next_review_date TIMESTAMP NOT NULL,
		last_reviewed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_facts_learner ON facts(learner_id, skill)`,
	`CREATE INDEX IF NOT EXISTS idx_facts_due ON facts(learner_id, next_review_date)`,

	`CREATE TABLE IF NOT EXISTS review_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fact_id TEXT NOT NULL REFERENCES facts(id),
		learner_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		quality INTEGER NOT NULL,
		reviewed_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_review_events_learner ON review_events(learner_id, reviewed_at)`,

	`CREATE TABLE IF NOT EXISTS completions (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		session_id TEXT,
		kind TEXT NOT NULL,
		topic TEXT,
		difficulty TEXT,
		score REAL NOT NULL,
		struggled_with TEXT NOT NULL DEFAULT '[]',
		completed_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_learner ON completions(learner_id, completed_at)`,

	`CREATE TABLE IF NOT EXISTS observations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		learner_id TEXT NOT NULL,
		skill TEXT NOT NULL,
		score REAL NOT NULL,
		source TEXT NOT NULL,
		observed_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_observations_learner ON observations(learner_id, skill)`,

	`CREATE TABLE IF NOT EXISTS profile_snapshots (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		version INTEGER NOT NULL,
		data TEXT NOT NULL,
		computed_at TIMESTAMP NOT NULL,
		UNIQUE(learner_id, version)
	)`,

	`CREATE TABLE IF NOT EXISTS proficiency_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		learner_id TEXT NOT NULL,
		skill TEXT NOT NULL,
		level TEXT NOT NULL,
		confidence REAL NOT NULL,
		source TEXT NOT NULL,
		trajectory TEXT NOT NULL DEFAULT '',
		rationale TEXT NOT NULL DEFAULT '',
		accepted INTEGER NOT NULL DEFAULT 0,
		recorded_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_proficiency_learner ON proficiency_records(learner_id, skill, recorded_at)`,

	`CREATE TABLE IF NOT EXISTS lesson_artifacts (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		session_id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		objective TEXT NOT NULL,
		topics TEXT NOT NULL DEFAULT '[]',
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS quiz_artifacts (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		session_id TEXT NOT NULL UNIQUE,
		lesson_id TEXT NOT NULL REFERENCES lesson_artifacts(id),
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_versions (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		version INTEGER NOT NULL,
		summary TEXT NOT NULL,
		body TEXT NOT NULL,
		trigger_reason TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE(learner_id, version)
	)`,

	`CREATE TABLE IF NOT EXISTS quiz_results (
		id TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL,
		session_id TEXT,
		score REAL NOT NULL,
		submitted_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_results_learner ON quiz_results(learner_id, submitted_at)`,

	`CREATE TABLE IF NOT EXISTS quiz_item_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		result_id TEXT NOT NULL REFERENCES quiz_results(id),
		skill TEXT NOT NULL,
		correct INTEGER NOT NULL,
		mistake TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		learner_id TEXT NOT NULL,
		author TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS llm_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TIMESTAMP NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

func initSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
