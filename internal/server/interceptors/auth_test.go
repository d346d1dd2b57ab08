package interceptors

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"palay-protector/internal/security"
)

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func bearerContext(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	}))
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != want {
		t.Errorf("status code = %v, want %v", st.Code(), want)
	}
}

func TestAuthUnary_PublicMethod(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{"/test.Service/PublicMethod": true}, nil)

	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/PublicMethod",
	}, okHandler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v, want %q", resp, "success")
	}
}

func TestAuthUnary_PublicMethod_InvalidTokenIgnored(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{"/test.Service/PublicMethod": true}, nil)
	_, err = interceptor(bearerContext("garbage"), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/PublicMethod",
	}, func(ctx context.Context, req interface{}) (interface{}, error) {
		if _, ok := GetSessionID(ctx); ok {
			t.Error("session_id must not be set for an invalid token")
		}
		return "success", nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}

func TestAuthUnary_ProtectedMethod_NoToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{}, nil)
	_, err = interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, okHandler)
	requireCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_ProtectedMethod_ValidToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, err := tokens.IssueSession("session-1")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{}, nil)

	resp, err := interceptor(bearerContext(token), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, func(ctx context.Context, req interface{}) (interface{}, error) {
		sessionID, ok := GetSessionID(ctx)
		if !ok || sessionID != "session-1" {
			t.Errorf("session_id = %q, ok = %v, want %q", sessionID, ok, "session-1")
		}
		return "success", nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v, want %q", resp, "success")
	}
}

func TestAuthUnary_ProtectedMethod_InvalidToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{}, nil)
	_, err = interceptor(bearerContext("invalid-token"), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, okHandler)
	requireCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_SessionValidator(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, err := tokens.IssueSession("session-1")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	tests := []struct {
		name      string
		validator SessionValidator
		wantErr   bool
	}{
		{"live session", func(ctx context.Context, id string) (bool, error) { return id == "session-1", nil }, false},
		{"expired session", func(ctx context.Context, id string) (bool, error) { return false, nil }, true},
		{"lookup error", func(ctx context.Context, id string) (bool, error) { return false, errors.New("boom") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor := AuthUnary(tokens, map[string]bool{}, tt.validator)
			resp, err := interceptor(bearerContext(token), "request", &grpc.UnaryServerInfo{
				FullMethod: "/test.Service/ProtectedMethod",
			}, okHandler)
			if tt.wantErr {
				requireCode(t, err, codes.Unauthenticated)
				return
			}
			if err != nil || resp != "success" {
				t.Fatalf("interceptor = %v, %v", resp, err)
			}
		})
	}
}

func TestExtractBearer_Valid(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Bearer token123",
	}))
	token := extractBearer(ctx)
	if token != "token123" {
		t.Errorf("token = %q, want %q", token, "token123")
	}
}

func TestExtractBearer_CaseInsensitive(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "bearer token123",
	}))
	token := extractBearer(ctx)
	if token != "token123" {
		t.Errorf("token = %q, want %q", token, "token123")
	}
}

func TestExtractBearer_Missing(t *testing.T) {
	ctx := context.Background()
	token := extractBearer(ctx)
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestExtractBearer_InvalidPrefix(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "Basic token123",
	}))
	token := extractBearer(ctx)
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestExtractBearer_Whitespace(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		"authorization": "  Bearer   token123  ",
	}))
	token := extractBearer(ctx)
	if token != "token123" {
		t.Errorf("token = %q, want %q", token, "token123")
	}
}
