package otel

import (
	"context"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"palay-protector/internal/telemetry/domain"
)

// recordCapture stores the last Record passed to Emit for assertion.
type recordCapture struct {
	rec   otellog.Record
	calls int
}

func (r *recordCapture) Emit(ctx context.Context, rec otellog.Record) {
	r.rec = rec
	r.calls++
}

func attributes(rec otellog.Record) map[string]string {
	attrs := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	return attrs
}

func TestNewEventEmitter_NilProvider_ReturnsNoop(t *testing.T) {
	em := NewEventEmitter(nil)
	if em == nil {
		t.Fatal("NewEventEmitter(nil) returned nil")
	}
	if err := em.Emit(context.Background(), &domain.Event{EventType: "x"}); err != nil {
		t.Errorf("noop Emit: %v", err)
	}
}

func TestNewEventEmitter_WithProvider(t *testing.T) {
	provider := sdklog.NewLoggerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	em := NewEventEmitter(provider)
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(ctx, nil): %v", err)
	}
	if err := em.Emit(context.Background(), domain.NewEvent("x", "test", nil)); err != nil {
		t.Errorf("Emit: %v", err)
	}
}

func TestEmit_AttributeAndBodyMapping(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	event := &domain.Event{
		AccountID: "acc1",
		SessionID: "sess1",
		EventType: domain.EventDetectionCompleted,
		Source:    "detection",
		Metadata:  []byte(`{"records":1}`),
		CreatedAt: created,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec
	if got := rec.Body().AsBytes(); string(got) != `{"records":1}` {
		t.Errorf("body = %q", got)
	}
	if !rec.Timestamp().Equal(created) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp(), created)
	}
	want := map[string]string{
		"account_id": "acc1", "session_id": "sess1",
		"event_type": domain.EventDetectionCompleted, "source": "detection",
	}
	attrs := attributes(rec)
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("attr %q = %q, want %q", k, attrs[k], v)
		}
	}
}

func TestEmit_PartialFields(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	before := time.Now().UTC()
	if err := em.Emit(context.Background(), &domain.Event{EventType: "ping"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec
	if !rec.Body().Empty() {
		t.Error("body should be empty when metadata is nil")
	}
	attrs := attributes(rec)
	if len(attrs) != 1 || attrs["event_type"] != "ping" {
		t.Errorf("attributes = %v, want only event_type", attrs)
	}
	if rec.Timestamp().Before(before) {
		t.Errorf("zero CreatedAt should use current time, got %v", rec.Timestamp())
	}
}

func TestNewEventEmitterWithLogger_Nil(t *testing.T) {
	if err := NewEventEmitterWithLogger(nil).Emit(context.Background(), &domain.Event{}); err != nil {
		t.Errorf("nil logger emitter: %v", err)
	}
}
