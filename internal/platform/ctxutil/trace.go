package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries the correlation ids attached to an incoming request.
// TraceID follows the active span when the caller did not supply one;
// RequestID is minted per request.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

// GetTraceData returns the request's trace data, or nil outside a request.
func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
