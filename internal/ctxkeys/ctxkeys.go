package ctxkeys

import "context"

// contextKey is the key type used to store values in a context.
type contextKey string

const (
	runIDKey    contextKey = "run_id"
	traceIDKey  contextKey = "trace_id"
	platformKey contextKey = "platform"
)

// WithRunID sets the pipeline run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID gets the pipeline run ID.
func RunID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(runIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithTraceID sets the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID gets the trace ID.
func TraceID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithPlatform sets the target platform name.
func WithPlatform(ctx context.Context, platform string) context.Context {
	return context.WithValue(ctx, platformKey, platform)
}

// Platform gets the target platform name.
func Platform(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(platformKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
