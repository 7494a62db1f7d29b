package llm

import "context"

type contextKey struct{}

var purposeKey contextKey

// WithPurpose labels the context with what a generation call is for
// (lesson, quiz, reassessment, plan). The logging decorator records the
// label on each LLM event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
