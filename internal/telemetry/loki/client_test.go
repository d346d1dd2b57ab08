package loki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func captureServer(t *testing.T, status int, got *PushRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode push body: %v", err)
			}
		}
		w.WriteHeader(status)
	}))
}

func TestPushEventJSON_LabelsAndTimestamp(t *testing.T) {
	var got PushRequest
	srv := captureServer(t, http.StatusNoContent, &got)
	defer srv.Close()

	raw := []byte(`{"accountId":"a1","eventType":"detection_completed","source":"detection","createdAt":"2025-06-01T08:00:00Z"}`)
	if err := NewClient(srv.URL + "/").PushEventJSON(context.Background(), raw); err != nil {
		t.Fatalf("PushEventJSON: %v", err)
	}
	if len(got.Streams) != 1 {
		t.Fatalf("streams = %d, want 1", len(got.Streams))
	}
	s := got.Streams[0]
	if s.Stream["job"] != "palay" || s.Stream["event_type"] != "detection_completed" || s.Stream["source"] != "detection" {
		t.Errorf("labels = %v", s.Stream)
	}
	if _, ok := s.Stream["account_id"]; ok {
		t.Error("account id must not be a label")
	}
	want := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).UnixNano()
	if s.Values[0][0] != strconv.FormatInt(want, 10) {
		t.Errorf("timestamp = %s, want %d", s.Values[0][0], want)
	}
	if s.Values[0][1] != string(raw) {
		t.Errorf("line = %s", s.Values[0][1])
	}
}

func TestPushEventJSON_UnparseableLine(t *testing.T) {
	var got PushRequest
	srv := captureServer(t, http.StatusNoContent, &got)
	defer srv.Close()
	if err := NewClient(srv.URL).PushEventJSON(context.Background(), []byte("not json")); err != nil {
		t.Fatalf("PushEventJSON: %v", err)
	}
	if got.Streams[0].Values[0][1] != "not json" || len(got.Streams[0].Stream) != 1 {
		t.Errorf("stream = %+v", got.Streams[0])
	}
}

func TestPushEvent_SanitizesLabels(t *testing.T) {
	var got PushRequest
	srv := captureServer(t, http.StatusNoContent, &got)
	defer srv.Close()
	err := NewClient(srv.URL).PushEvent(context.Background(), time.Now(), "line", map[string]string{"source": "grpc interceptor/v1", "empty": "  "})
	if err != nil {
		t.Fatalf("PushEvent: %v", err)
	}
	if got.Streams[0].Stream["source"] != "grpc_interceptor_v1" {
		t.Errorf("source label = %q", got.Streams[0].Stream["source"])
	}
	if _, ok := got.Streams[0].Stream["empty"]; ok {
		t.Error("blank labels should be dropped")
	}
}

func TestPushEvent_Errors(t *testing.T) {
	if err := NewClient("").PushEvent(context.Background(), time.Now(), "x", nil); err == nil {
		t.Error("empty base URL should fail")
	}
	srv := captureServer(t, http.StatusBadRequest, nil)
	defer srv.Close()
	if err := NewClient(srv.URL).PushEvent(context.Background(), time.Now(), "x", nil); err == nil {
		t.Error("non-2xx should fail")
	}
}
