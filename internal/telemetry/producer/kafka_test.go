package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"palay-protector/internal/telemetry/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaProducer_Disabled(t *testing.T) {
	if p := NewKafkaProducer(nil, "topic"); p != nil {
		t.Error("no brokers should disable the producer")
	}
	if p := NewKafkaProducer([]string{"localhost:9092"}, ""); p != nil {
		t.Error("empty topic should disable the producer")
	}
	var p *KafkaProducer
	if err := p.Emit(context.Background(), &domain.Event{}); err != nil {
		t.Errorf("nil producer Emit: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil producer Close: %v", err)
	}
}

func TestKafkaProducer_EmitWritesJSONKeyedByAccount(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, topic: "palay-telemetry"}
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	event := &domain.Event{AccountID: "a1", EventType: domain.EventDetectionCompleted, Source: "detection", CreatedAt: created}

	if err := p.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "a1" {
		t.Errorf("key = %q, want a1", msg.Key)
	}
	var got domain.Event
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	if got.EventType != domain.EventDetectionCompleted || !got.CreatedAt.Equal(created) {
		t.Errorf("decoded = %+v", got)
	}
}

func TestKafkaProducer_EmitError(t *testing.T) {
	boom := errors.New("broker unavailable")
	p := &KafkaProducer{writer: &fakeWriter{err: boom}, topic: "t"}
	if err := p.Emit(context.Background(), &domain.Event{EventType: "x"}); !errors.Is(err, boom) {
		t.Errorf("want broker error, got %v", err)
	}
}

func TestKafkaProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, topic: "t"}
	if err := p.Close(); err != nil || !w.closed {
		t.Errorf("Close = %v, closed = %v", err, w.closed)
	}
}
