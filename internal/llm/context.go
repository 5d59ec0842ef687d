package llm

import "context"

type purposeKey struct{}

// Purposes label LLM calls in the request log and `typorax llm stats`.
const (
	PurposeLesson   = "lesson"          // generated while the learner waits
	PurposePrefetch = "lesson_prefetch" // generated in the background for later
)

const purposeUnknown = "unknown"

// WithPurpose labels calls made with ctx. An outer label wins, so a
// prefetch stays a prefetch through the lesson service.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if _, ok := ctx.Value(purposeKey{}).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return purposeUnknown
}
