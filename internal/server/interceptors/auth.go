package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const bearerPrefix = "bearer "

// SessionTokenValidator validates a session token and returns the session id it carries.
// *security.TokenProvider implements it.
type SessionTokenValidator interface {
	ValidateSession(token string) (string, error)
}

// SessionValidator reports whether the session is still live (e.g. present in the registry).
// Return (false, nil) for an unknown or expired session; return an error on lookup failure.
type SessionValidator func(ctx context.Context, sessionID string) (bool, error)

// AuthUnary returns a unary server interceptor that validates the Bearer session token
// from gRPC metadata and sets session_id in context for protected RPCs.
// publicMethods is the set of full method names that do not require a Bearer token
// (e.g. SessionService StartSession; HealthService HealthCheck).
// When sessionValidator is non-nil, protected RPCs are rejected unless it reports the session live.
func AuthUnary(tokens SessionTokenValidator, publicMethods map[string]bool, sessionValidator SessionValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		token := extractBearer(ctx)
		public := publicMethods[info.FullMethod]

		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		sessionID, err := tokens.ValidateSession(token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		if sessionValidator != nil && !public {
			live, err := sessionValidator(ctx, sessionID)
			if err != nil || !live {
				return nil, status.Error(codes.Unauthenticated, "session expired; start a new session")
			}
		}

		ctx = WithSessionID(ctx, sessionID)
		return handler(ctx, req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
