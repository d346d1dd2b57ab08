package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	before := time.Now().UTC()
	e := NewEvent(EventDetectionCompleted, "detection", map[string]int{"records": 2})
	if e.EventType != EventDetectionCompleted || e.Source != "detection" {
		t.Errorf("event = %+v", e)
	}
	if e.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want >= %v", e.CreatedAt, before)
	}
	if string(e.Metadata) != `{"records":2}` {
		t.Errorf("Metadata = %s", e.Metadata)
	}
	if NewEvent("x", "y", nil).Metadata != nil {
		t.Error("nil metadata should stay empty")
	}
	if NewEvent("x", "y", func() {}).Metadata != nil {
		t.Error("unmarshalable metadata should stay empty")
	}
}

func TestEvent_JSONFieldNames(t *testing.T) {
	e := &Event{AccountID: "a1", EventType: "t", Source: "s", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, k := range []string{"accountId", "eventType", "source", "createdAt"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q in %s", k, b)
		}
	}
	if _, ok := m["sessionId"]; ok {
		t.Error("empty sessionId should be omitted")
	}
}
