package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"palay-protector/internal/history/domain"
)

func ids(records []*domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestMemoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	t0 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	_ = r.Append(ctx, &domain.Record{ID: "old", AccountID: "a1", CreatedAt: t0, Label: "Brown Spot", Confidence: 50})
	_ = r.Append(ctx, &domain.Record{ID: "new", AccountID: "a1", CreatedAt: t0.Add(time.Hour), Label: "Rice Blast", Confidence: 87})
	_ = r.Append(ctx, &domain.Record{ID: "mid", AccountID: "a1", CreatedAt: t0.Add(time.Minute), Label: "Tungro", Confidence: 60})
	_ = r.Append(ctx, &domain.Record{ID: "other", AccountID: "a2", CreatedAt: t0.Add(2 * time.Hour), Label: "Tungro", Confidence: 60})

	got, err := r.ListByAccount(ctx, "a1")
	if err != nil {
		t.Fatalf("ListByAccount: %v", err)
	}
	want := []string{"new", "mid", "old"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("record %d is newer than record %d", i, i-1)
		}
	}
}

func TestMemoryRepository_TiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	t0 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	_ = r.Append(ctx, &domain.Record{ID: "earlier", AccountID: "a1", CreatedAt: t0.Add(-time.Hour), Label: "Tungro", Confidence: 55})
	_ = r.Append(ctx, &domain.Record{ID: "blast", AccountID: "a1", CreatedAt: t0, Label: "Rice Blast", Confidence: 90})
	_ = r.Append(ctx, &domain.Record{ID: "spot", AccountID: "a1", CreatedAt: t0, Label: "Brown Spot", Confidence: 40})

	got, _ := r.ListByAccount(ctx, "a1")
	if want := []string{"blast", "spot", "earlier"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestMemoryRepository_ListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	t0 := time.Now().UTC()
	for i, id := range []string{"r1", "r2", "r3"} {
		_ = r.Append(ctx, &domain.Record{ID: id, AccountID: "a1", CreatedAt: t0.Add(time.Duration(i%2) * time.Second), Label: "x", Confidence: 1})
	}
	first, _ := r.ListByAccount(ctx, "a1")
	second, _ := r.ListByAccount(ctx, "a1")
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("repeated listing differs: %v vs %v", ids(first), ids(second))
	}
	first[0].Label = "mutated"
	again, _ := r.ListByAccount(ctx, "a1")
	if again[0].Label == "mutated" {
		t.Error("returned records must be copies")
	}
}

func TestMemoryRepository_EmptyAccount(t *testing.T) {
	got, err := NewMemoryRepository().ListByAccount(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByAccount: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %v", got)
	}
}

func TestMemoryRepository_AppendCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewMemoryRepository()
	if err := r.Append(ctx, &domain.Record{ID: "r1", AccountID: "a1", Label: "x"}); err == nil {
		t.Fatal("Append with canceled context should fail")
	}
	got, _ := r.ListByAccount(context.Background(), "a1")
	if len(got) != 0 {
		t.Errorf("nothing should be stored, got %d records", len(got))
	}
}

func TestMemoryRepository_AppendRejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	tests := []struct {
		name string
		rec  *domain.Record
	}{
		{"missing id", &domain.Record{AccountID: "a1", Label: "x", Confidence: 1}},
		{"missing label", &domain.Record{ID: "r1", AccountID: "a1", Confidence: 1}},
		{"confidence over 100", &domain.Record{ID: "r2", AccountID: "a1", Label: "x", Confidence: 101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Append(ctx, tt.rec); err == nil {
				t.Fatal("Append should reject an invalid record")
			}
		})
	}
	if got, _ := r.ListByAccount(ctx, "a1"); len(got) != 0 {
		t.Errorf("invalid records stored: %d", len(got))
	}
}
