package domain

import (
	"encoding/json"
	"time"
)

// Event types emitted by the server.
const (
	EventGRPCRequest        = "grpc_request"
	EventDetectionCompleted = "detection_completed"
	EventSessionTransition  = "session_transition"
)

// Event is one telemetry event. Metadata is free-form JSON specific to EventType and never carries
// passwords, codes or image bytes.
type Event struct {
	AccountID string          `json:"accountId,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	EventType string          `json:"eventType"`
	Source    string          `json:"source"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewEvent returns an event stamped with the current UTC time. metadata is marshalled to JSON;
// a nil metadata or a marshal failure leaves Metadata empty.
func NewEvent(eventType, source string, metadata any) *Event {
	e := &Event{EventType: eventType, Source: source, CreatedAt: time.Now().UTC()}
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			e.Metadata = b
		}
	}
	return e
}
