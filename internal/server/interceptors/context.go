package interceptors

import "context"

type contextKey struct{ name string }

var sessionIDKey = contextKey{"session_id"}

// WithSessionID returns a context carrying the caller's session id.
// Handlers read it via GetSessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID returns the session_id from context and true if set; otherwise "", false.
func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionIDKey).(string)
	return v, ok
}
