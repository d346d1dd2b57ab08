package interceptors

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"palay-protector/internal/telemetry/domain"
)

type recordingEmitter struct {
	mu     sync.Mutex
	events []*domain.Event
	done   chan struct{}
}

func (r *recordingEmitter) Emit(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func TestTelemetryUnary_EmitsEvent(t *testing.T) {
	em := &recordingEmitter{done: make(chan struct{}, 1)}
	interceptor := TelemetryUnary(em, nil)
	ctx := WithSessionID(context.Background(), "session-1")

	_, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{FullMethod: "/palay.v1.SessionService/Login"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, status.Error(codes.NotFound, "invalid credentials")
		})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("interceptor must pass handler errors through, got %v", err)
	}

	select {
	case <-em.done:
	case <-time.After(2 * time.Second):
		t.Fatal("no event emitted")
	}
	em.mu.Lock()
	defer em.mu.Unlock()
	e := em.events[0]
	if e.EventType != domain.EventGRPCRequest || e.SessionID != "session-1" {
		t.Errorf("event = %+v", e)
	}
	var meta grpcRequestMetadata
	if err := json.Unmarshal(e.Metadata, &meta); err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if meta.FullMethod != "/palay.v1.SessionService/Login" || meta.StatusCode != "NotFound" || meta.ClientIP != "unknown" {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestTelemetryUnary_SkipAndNil(t *testing.T) {
	em := &recordingEmitter{done: make(chan struct{}, 1)}
	skip := map[string]bool{"/palay.v1.HealthService/HealthCheck": true}
	info := &grpc.UnaryServerInfo{FullMethod: "/palay.v1.HealthService/HealthCheck"}

	resp, err := TelemetryUnary(em, skip)(context.Background(), "request", info, okHandler)
	if err != nil || resp != "success" {
		t.Fatalf("interceptor = %v, %v", resp, err)
	}
	resp, err = TelemetryUnary(nil, nil)(context.Background(), "request", info, okHandler)
	if err != nil || resp != "success" {
		t.Fatalf("nil emitter interceptor = %v, %v", resp, err)
	}

	select {
	case <-em.done:
		t.Error("skipped method must not emit")
	case <-time.After(100 * time.Millisecond):
	}
}
