package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int       `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// LLMEventSink is the append interface the llm logging decorator needs.
type LLMEventSink interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// LLMEventRepo records and queries LLM request events.
type LLMEventRepo struct {
	db *sqlx.DB
}

// AppendLLMRequest records an LLM API call event.
func (r *LLMEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (
			timestamp, provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns the most recent events, newest first.
func (r *LLMEventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	var events []LLMEvent
	err := r.db.SelectContext(ctx, &events,
		`SELECT * FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	return events, nil
}

// GetLLMEvent returns one event by ID, or nil.
func (r *LLMEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	var e LLMEvent
	err := r.db.GetContext(ctx, &e, `SELECT * FROM llm_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	return &e, nil
}

// LLMUsageByPurpose aggregates usage per purpose label.
func (r *LLMEventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var stats []LLMUsageStat
	err := r.db.SelectContext(ctx, &stats, `
		SELECT purpose,
			COUNT(*) AS calls,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("llm usage by purpose: %w", err)
	}
	return stats, nil
}

// LLMUsageByModel aggregates usage per served model.
func (r *LLMEventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var stats []LLMModelUsage
	err := r.db.SelectContext(ctx, &stats, `
		SELECT model,
			COUNT(*) AS calls,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens
		FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("llm usage by model: %w", err)
	}
	return stats, nil
}
