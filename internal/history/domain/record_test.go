package domain

import (
	"testing"
	"time"
)

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr bool
	}{
		{"valid", Record{ID: "r1", AccountID: "a1", Label: "Rice Blast", Confidence: 87}, false},
		{"bounds inclusive", Record{ID: "r1", AccountID: "a1", Label: "healthy", Confidence: 100}, false},
		{"missing account", Record{ID: "r1", Label: "x", Confidence: 1}, true},
		{"missing label", Record{ID: "r1", AccountID: "a1", Confidence: 1}, true},
		{"negative confidence", Record{ID: "r1", AccountID: "a1", Label: "x", Confidence: -1}, true},
		{"confidence over 100", Record{ID: "r1", AccountID: "a1", Label: "x", Confidence: 100.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := []*Record{
		{Label: "Rice Blast", CreatedAt: t0},
		{Label: "Brown Spot", CreatedAt: t0.Add(time.Hour)},
		{Label: "Rice Blast", CreatedAt: t0.Add(2 * time.Hour)},
		{Label: HealthyLabel, CreatedAt: t0.Add(30 * time.Minute)},
		nil,
	}
	s := Summarize(records)
	if s.TotalScans != 4 || s.DiseasedScans != 3 || s.HealthyScans != 1 || s.DistinctDiseases != 2 {
		t.Errorf("Summarize = %+v", s)
	}
	if !s.LastScanAt.Equal(t0.Add(2 * time.Hour)) {
		t.Errorf("LastScanAt = %v", s.LastScanAt)
	}
	if empty := Summarize(nil); empty.TotalScans != 0 || !empty.LastScanAt.IsZero() {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}
